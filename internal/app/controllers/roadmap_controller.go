package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/services"
	"github.com/skillsynergy/api/internal/middleware"
)

// RoadmapController serves career roadmaps
type RoadmapController struct {
	catalogService services.CatalogService
}

// NewRoadmapController creates a new RoadmapController
func NewRoadmapController(catalogService services.CatalogService) *RoadmapController {
	return &RoadmapController{catalogService: catalogService}
}

// GetRoadmaps lists roadmaps, optionally narrowed by skill categories
// @Summary List roadmaps
// @Description Lists every roadmap, or only those overlapping the given comma-separated skill category ids
// @Tags roadmaps
// @Produce json
// @Param skillCategories query string false "Comma-separated skill category ids"
// @Success 200 {array} models.Roadmap "Roadmaps"
// @Failure 400 {object} dto.ErrorResponse "Malformed skillCategories parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roadmaps [get]
func (c *RoadmapController) GetRoadmaps(ctx *gin.Context) {
	var categoryIDs []int64
	if raw := ctx.Query("skillCategories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("skillCategories must be a comma-separated list of numbers"))
				return
			}
			categoryIDs = append(categoryIDs, id)
		}
	}

	roadmaps, err := c.catalogService.GetRoadmaps(ctx, categoryIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, roadmaps)
}

// GetRoadmap retrieves a single roadmap
// @Summary Get roadmap details
// @Tags roadmaps
// @Produce json
// @Param id path int true "Roadmap ID" Format(int64) minimum(1)
// @Success 200 {object} models.Roadmap "Roadmap retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid roadmap ID"
// @Failure 404 {object} dto.ErrorResponse "Roadmap not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roadmaps/{id} [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Roadmap ID must be a valid number"))
		return
	}

	roadmap, err := c.catalogService.GetRoadmap(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, roadmap)
}
