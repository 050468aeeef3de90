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

// JobController serves the job board
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// GetJobs lists jobs matching the optional filters
// @Summary List jobs
// @Description Lists jobs most recent first; all query filters are optional and combined with AND
// @Tags jobs
// @Produce json
// @Param search query string false "Case-insensitive match against title, company, description or any skill tag"
// @Param experienceLevel query string false "Exact experience level"
// @Param jobType query string false "Exact job type (full-time, part-time, internship)"
// @Param location query string false "Case-insensitive location substring"
// @Success 200 {array} models.Job "Jobs, newest first"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *JobController) GetJobs(ctx *gin.Context) {
	filters := storage.JobFilters{
		Search:          ctx.Query("search"),
		ExperienceLevel: ctx.Query("experienceLevel"),
		JobType:         ctx.Query("jobType"),
		Location:        ctx.Query("location"),
	}

	jobs, err := c.jobService.GetJobs(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

// GetJob retrieves a single job listing
// @Summary Get job details
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Success 200 {object} models.Job "Job retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Job ID must be a valid number"))
		return
	}

	job, err := c.jobService.GetJob(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}
