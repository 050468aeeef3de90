package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/services"
	"github.com/skillsynergy/api/internal/app/storage"
	"github.com/skillsynergy/api/internal/middleware"
)

// MentorController serves the mentor directory and mentorship requests
type MentorController struct {
	mentorService services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService) *MentorController {
	return &MentorController{mentorService: mentorService}
}

// GetMentors lists available mentors
// @Summary List mentors
// @Description Lists available mentors, optionally narrowed by specialization; unavailable mentors are never included
// @Tags mentors
// @Produce json
// @Param specialization query string false "Case-insensitive match against any specialization"
// @Success 200 {array} models.Mentor "Available mentors"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors [get]
func (c *MentorController) GetMentors(ctx *gin.Context) {
	filters := storage.MentorFilters{
		Specialization: ctx.Query("specialization"),
	}

	mentors, err := c.mentorService.GetMentors(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mentors)
}

// GetMentor retrieves a single mentor
// @Summary Get mentor details
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID" Format(int64) minimum(1)
// @Success 200 {object} models.Mentor "Mentor retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/{id} [get]
func (c *MentorController) GetMentor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Mentor ID must be a valid number"))
		return
	}

	mentor, err := c.mentorService.GetMentor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mentor)
}

// CreateMentorRequest submits a mentorship request
// @Summary Create a mentor request
// @Description Submits a mentorship request; new requests always start as pending
// @Tags mentor-requests
// @Accept json
// @Produce json
// @Param request body dto.CreateMentorRequestRequest true "Mentorship request"
// @Success 201 {object} models.MentorRequest "Request created with status pending"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor-requests [post]
func (c *MentorController) CreateMentorRequest(ctx *gin.Context) {
	var req dto.CreateMentorRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	request, err := c.mentorService.CreateMentorRequest(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, request)
}

// GetMentorRequests lists a user's mentorship requests
// @Summary List a user's mentor requests
// @Tags mentor-requests
// @Produce json
// @Param userId path int true "User ID" Format(int64) minimum(1)
// @Success 200 {array} models.MentorRequest "Requests for the user"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor-requests/{userId} [get]
func (c *MentorController) GetMentorRequests(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("User ID must be a valid number"))
		return
	}

	requests, err := c.mentorService.GetMentorRequests(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}
