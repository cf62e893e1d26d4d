package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/profinsights/backend/internal/app/models/dto"
	"github.com/profinsights/backend/internal/app/services"
	"github.com/profinsights/backend/internal/middleware"
)

// ProfessorController handles professor directory operations
type ProfessorController struct {
	professorService *services.ProfessorService
	logger           zerolog.Logger
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService *services.ProfessorService, logger zerolog.Logger) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
		logger:           logger,
	}
}

// List returns all professors
// @Summary List professors
// @Description Returns the professor directory, optionally filtered by a case-insensitive name substring
// @Tags professors
// @Produce json
// @Param name query string false "Name filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Professor} "Professors"
// @Router /professors [get]
func (c *ProfessorController) List(ctx *gin.Context) {
	professors, err := c.professorService.List(ctx.Request.Context(), ctx.Query("name"))
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list professors")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCountedResponse(professors, len(professors)))
}

// Search filters professors by name
// @Summary Search professors by name
// @Description Returns professors whose name contains the query, case-insensitively
// @Tags professors
// @Produce json
// @Param q query string true "Name query"
// @Success 200 {object} dto.APIResponse{data=[]models.Professor} "Matching professors"
// @Router /professors/search [get]
func (c *ProfessorController) Search(ctx *gin.Context) {
	professors, err := c.professorService.List(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCountedResponse(professors, len(professors)))
}

// Get returns one professor
// @Summary Get a professor
// @Description Returns a professor with its current review aggregates
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=models.Professor} "Professor"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [get]
func (c *ProfessorController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	professor, err := c.professorService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(professor, ""))
}

// Create adds a professor to the directory
// @Summary Create a professor
// @Description Adds a professor to the directory. Admin only.
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=models.Professor} "Professor created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /professors [post]
func (c *ProfessorController) Create(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	professor, err := c.professorService.Create(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create professor")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(professor, "Professor created"))
}

// Update modifies a professor's directory fields
// @Summary Update a professor
// @Description Applies the provided fields to a professor. Admin only.
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Param request body dto.UpdateProfessorRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Professor} "Professor updated"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [put]
func (c *ProfessorController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	professor, err := c.professorService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(professor, "Professor updated"))
}

// Delete removes a professor
// @Summary Delete a professor
// @Description Removes a professor from the directory. Linked reviews keep their snapshot fields. Admin only.
// @Tags professors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse "Professor deleted"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [delete]
func (c *ProfessorController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.professorService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Professor deleted"))
}

// parseIDParam parses a numeric path parameter, writing a validation error
// response when the value is not a positive integer.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
