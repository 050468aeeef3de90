package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
	"github.com/skillsynergy/api/internal/pkg/logger"
)

// HandleAPIError converts a service error into the matching status code and
// error envelope. Unclassified errors become a generic 500; their detail is
// logged, never leaked.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrAssessmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Assessment not found"))
	case errors.Is(err, apperrors.ErrSkillCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Skill category not found"))
	case errors.Is(err, apperrors.ErrRoadmapNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Roadmap not found"))
	case errors.Is(err, apperrors.ErrJobNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Job not found"))
	case errors.Is(err, apperrors.ErrMentorNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Mentor not found"))
	case errors.Is(err, apperrors.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Community group not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Username already exists"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Email already exists"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Resource already exists"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed"))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Bad request"))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
