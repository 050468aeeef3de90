package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/services"
	"github.com/skillsynergy/api/internal/middleware"
)

// CommunityController serves community groups
type CommunityController struct {
	communityService services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService) *CommunityController {
	return &CommunityController{communityService: communityService}
}

// GetCommunityGroups lists active community groups
// @Summary List community groups
// @Description Lists active groups only; inactive groups stay hidden without being deleted
// @Tags community-groups
// @Produce json
// @Success 200 {array} models.CommunityGroup "Active groups"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /community-groups [get]
func (c *CommunityController) GetCommunityGroups(ctx *gin.Context) {
	groups, err := c.communityService.GetCommunityGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// GetCommunityGroup retrieves a single group, active or not
// @Summary Get community group details
// @Tags community-groups
// @Produce json
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} models.CommunityGroup "Group retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid group ID"
// @Failure 404 {object} dto.ErrorResponse "Community group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /community-groups/{id} [get]
func (c *CommunityController) GetCommunityGroup(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Group ID must be a valid number"))
		return
	}

	group, err := c.communityService.GetCommunityGroup(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// CreateCommunityGroup creates a new community group
// @Summary Create a community group
// @Description Creates a group; the member count always starts at zero
// @Tags community-groups
// @Accept json
// @Produce json
// @Param request body dto.CreateCommunityGroupRequest true "Group information"
// @Success 201 {object} models.CommunityGroup "Group created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /community-groups [post]
func (c *CommunityController) CreateCommunityGroup(ctx *gin.Context) {
	var req dto.CreateCommunityGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	group, err := c.communityService.CreateCommunityGroup(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// JoinCommunityGroup increments a group's member count
// @Summary Join a community group
// @Description Increments the group's member count by one and returns the updated group
// @Tags community-groups
// @Produce json
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} models.CommunityGroup "Updated group"
// @Failure 400 {object} dto.ErrorResponse "Invalid group ID"
// @Failure 404 {object} dto.ErrorResponse "Community group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /community-groups/{id}/join [post]
func (c *CommunityController) JoinCommunityGroup(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Group ID must be a valid number"))
		return
	}

	group, err := c.communityService.JoinCommunityGroup(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, group)
}
