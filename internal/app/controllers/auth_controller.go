// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/app/services"
	"github.com/profinsights/backend/internal/middleware"
	"github.com/profinsights/backend/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService  *services.AuthService
	jwtService   *auth.JWTService
	secureCookie bool
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, jwtService *auth.JWTService, secureCookie bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:  authService,
		jwtService:   jwtService,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Register handles student registration
// @Summary Register a new student
// @Description Creates an unverified student account and sends a verification email. Only institutional email addresses are accepted.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student registration information"
// @Success 201 {object} dto.APIResponse "Registration initiated. Check email for verification link."
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or non-institutional email"
// @Failure 409 {object} dto.ErrorResponse "Email or roll number already registered"
// @Failure 500 {object} dto.ErrorResponse "Verification email could not be sent"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.authService.Register(ctx.Request.Context(), &req); err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(nil, "Registration successful. Please check your email to verify your account."))
}

// VerifyEmail handles the email verification link
// @Summary Verify email address
// @Description Consumes a one-time verification token, marks the account verified and opens a session
// @Tags auth
// @Produce json
// @Param token path string true "Verification token from the email link"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Email verified"
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired verification token"
// @Router /auth/verify-email/{token} [get]
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	token := ctx.Param("token")

	session, err := c.authService.VerifyEmail(ctx.Request.Context(), token)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Email verification failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, session.Token)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session, "Email verified successfully"))
}

// Login handles student login
// @Summary Student login
// @Description Authenticates a verified student and opens a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing credentials"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials or unverified email"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, session.Token)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session, "Login successful"))
}

// Logout clears the session cookie
// @Summary Logout
// @Description Expires the session cookie. Issued tokens remain valid until expiry; clients must discard them.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /auth/logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", c.secureCookie, true)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Logged out successfully"))
}

// Me returns the authenticated student's profile
// @Summary Current student profile
// @Description Returns the profile of the authenticated student
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfile} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	profile, err := c.authService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile, ""))
}

// setSessionCookie mirrors the session token into an HTTP-only cookie so browser
// clients do not have to manage the Authorization header themselves.
func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	maxAge := int(c.jwtService.TokenLifetime().Seconds())
	ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", c.secureCookie, true)
}
