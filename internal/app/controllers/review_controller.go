package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/app/services"
	"github.com/profinsights/backend/internal/middleware"
)

// ReviewController handles review submission and retrieval. It serves both the
// flat /reviews routes and the professor-nested ones; the professor scope comes
// from the professorId path parameter when present.
type ReviewController struct {
	reviewService *services.ReviewService
	logger        zerolog.Logger
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService *services.ReviewService, logger zerolog.Logger) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		logger:        logger,
	}
}

// Create submits a review
// @Summary Submit a review
// @Description Stores a review and recomputes the professor's aggregates when the review is linked to one. Anonymous submissions are accepted; the submitter is attached when a session is present.
// @Tags reviews
// @Accept json
// @Produce json
// @Param professorId path int false "Professor ID when submitting through the nested route"
// @Param request body dto.CreateReviewRequest true "Review payload"
// @Success 201 {object} dto.APIResponse{data=models.Review} "Review created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or score out of range"
// @Failure 404 {object} dto.ErrorResponse "Linked professor not found"
// @Router /professors/{professorId}/reviews [post]
func (c *ReviewController) Create(ctx *gin.Context) {
	professorID, ok := optionalProfessorID(ctx)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	var studentID *int64
	if id, authed := middleware.StudentIDFromContext(ctx); authed {
		studentID = &id
	}

	review, err := c.reviewService.Create(ctx.Request.Context(), professorID, studentID, &req, ctx.ClientIP())
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to create review")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(review, "Review submitted"))
}

// List returns reviews
// @Summary List reviews
// @Description Returns reviews newest first, scoped to one professor on the nested route
// @Tags reviews
// @Produce json
// @Param professorId path int false "Professor ID when listing through the nested route"
// @Success 200 {object} dto.APIResponse{data=[]models.Review} "Reviews"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{professorId}/reviews [get]
func (c *ReviewController) List(ctx *gin.Context) {
	professorID, ok := optionalProfessorID(ctx)
	if !ok {
		return
	}

	reviews, err := c.reviewService.List(ctx.Request.Context(), professorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCountedResponse(reviews, len(reviews)))
}

// Get returns one review
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} dto.APIResponse{data=models.Review} "Review"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [get]
func (c *ReviewController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	review, err := c.reviewService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(review, ""))
}

// Update modifies a review
// @Summary Update a review
// @Description Applies the provided fields and recomputes the linked professor's aggregates. Only the submitter or an admin may update.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Review} "Review updated"
// @Failure 403 {object} dto.ErrorResponse "Not the submitter"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [put]
func (c *ReviewController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	callerID, callerRole, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	review, err := c.reviewService.Update(ctx.Request.Context(), id, callerID, callerRole, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(review, "Review updated"))
}

// Delete removes a review
// @Summary Delete a review
// @Description Removes a review and recomputes the linked professor's aggregates. Only the submitter or an admin may delete.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} dto.APIResponse "Review deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the submitter"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [delete]
func (c *ReviewController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	callerID, callerRole, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	if err := c.reviewService.Delete(ctx.Request.Context(), id, callerID, callerRole); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Review deleted"))
}

// Report flags a review for misconduct
// @Summary Report a review
// @Description Flags a review as reporting misconduct for later moderation
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Review reported"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id}/report [post]
func (c *ReviewController) Report(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.reviewService.Report(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Review reported"))
}

// optionalProfessorID reads the professorId path parameter set on the nested
// professor routes. The flat review routes carry no such parameter.
func optionalProfessorID(ctx *gin.Context) (*int64, bool) {
	raw := ctx.Param("professorId")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professorId parameter")
		errorDetail = errorDetail.WithField("professorId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &id, true
}

// callerIdentity reads the authenticated caller from the context. JWTAuth must
// have run on the route.
func callerIdentity(ctx *gin.Context) (int64, models.RoleType, bool) {
	callerID, okID := middleware.StudentIDFromContext(ctx)
	role, okRole := middleware.RoleFromContext(ctx)
	if !okID || !okRole {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, "", false
	}
	return callerID, models.RoleType(role), true
}
