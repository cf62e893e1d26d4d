package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profinsights/backend/internal/app/controllers"
	"github.com/profinsights/backend/internal/app/models"
	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	professorController *controllers.ProfessorController,
	reviewController *controllers.ReviewController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Health endpoint outside the API group
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})

	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.GET("/verify-email/:token", authController.VerifyEmail)
		auth.POST("/login", authController.Login)
		auth.GET("/logout", authController.Logout)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
	}

	// --- Professor directory ---
	professors := api.Group("/professors")
	{
		professors.GET("", professorController.List)
		professors.GET("/search", professorController.Search)
		professors.GET("/:id", professorController.Get)

		// Admin-only directory management
		admin := professors.Group("")
		admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.POST("", professorController.Create)
			admin.PUT("/:id", professorController.Update)
			admin.DELETE("/:id", professorController.Delete)
		}
	}

	// Nested professor reviews. Gin cannot mix the :id and :professorId names on
	// one group, so the nested routes hang off their own subtree.
	professorReviews := api.Group("/professors/:id/reviews")
	{
		professorReviews.GET("", withProfessorScope(reviewController.List))
		professorReviews.POST("", authMiddleware.OptionalJWTAuth(), withProfessorScope(reviewController.Create))
	}

	// --- Reviews ---
	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewController.List)
		reviews.POST("", authMiddleware.OptionalJWTAuth(), reviewController.Create)
		reviews.GET("/:id", reviewController.Get)
		reviews.POST("/:id/report", authMiddleware.JWTAuth(), reviewController.Report)

		reviews.PUT("/:id", authMiddleware.JWTAuth(), reviewController.Update)
		reviews.DELETE("/:id", authMiddleware.JWTAuth(), reviewController.Delete)
	}
}

// withProfessorScope re-labels the :id parameter of the nested professor routes
// as professorId, which is the name the review controller reads.
func withProfessorScope(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "professorId", Value: c.Param("id")})
		handler(c)
	}
}
