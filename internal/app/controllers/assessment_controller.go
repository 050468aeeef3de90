package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/services"
	"github.com/skillsynergy/api/internal/middleware"
)

// AssessmentController handles skill-assessment operations
type AssessmentController struct {
	assessmentService services.AssessmentService
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService services.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// GetUserAssessment retrieves a user's assessment
// @Summary Get a user's assessment
// @Description Returns the user's assessment, or a null body if none exists
// @Tags assessments
// @Produce json
// @Param userId path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} models.UserAssessment "Assessment, or null when absent"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{userId} [get]
func (c *AssessmentController) GetUserAssessment(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("User ID must be a valid number"))
		return
	}

	assessment, err := c.assessmentService.GetUserAssessment(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Absence is not an error here: the intake flow probes this endpoint
	// before showing the questionnaire and expects a null body.
	ctx.JSON(http.StatusOK, assessment)
}

// CreateAssessment records a new assessment
// @Summary Create an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssessmentRequest true "Assessment answers"
// @Success 201 {object} models.UserAssessment "Assessment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	assessment, err := c.assessmentService.CreateUserAssessment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, assessment)
}

// UpdateAssessment merges changes into an existing assessment
// @Summary Update an assessment
// @Description Merges the provided fields into the user's existing assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param userId path int true "User ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAssessmentRequest true "Fields to update"
// @Success 200 {object} models.UserAssessment "Assessment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "No assessment exists for this user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{userId} [put]
func (c *AssessmentController) UpdateAssessment(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("User ID must be a valid number"))
		return
	}

	var req dto.UpdateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	assessment, err := c.assessmentService.UpdateUserAssessment(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assessment)
}
