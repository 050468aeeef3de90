package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/services"
	"github.com/skillsynergy/api/internal/middleware"
)

// CatalogController serves skill categories and their skills
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetSkillCategories lists all skill categories
// @Summary List skill categories
// @Tags skill-categories
// @Produce json
// @Success 200 {array} models.SkillCategory "Skill categories ordered by id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /skill-categories [get]
func (c *CatalogController) GetSkillCategories(ctx *gin.Context) {
	categories, err := c.catalogService.GetSkillCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// GetSkillsByCategory lists the skills of one category
// @Summary List skills in a category
// @Tags skill-categories
// @Produce json
// @Param id path int true "Skill category ID" Format(int64) minimum(1)
// @Success 200 {array} models.Skill "Skills in the category, empty if none"
// @Failure 400 {object} dto.ErrorResponse "Invalid category ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /skill-categories/{id}/skills [get]
func (c *CatalogController) GetSkillsByCategory(ctx *gin.Context) {
	categoryID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Category ID must be a valid number"))
		return
	}

	skills, err := c.catalogService.GetSkillsByCategory(ctx, categoryID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, skills)
}
