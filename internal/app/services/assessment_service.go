package services

import (
	"context"

	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/storage"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
)

// AssessmentService handles the skill-assessment intake lifecycle. A user
// has at most one assessment in practice; updates merge into it and never
// create one.
type AssessmentService interface {
	// GetUserAssessment returns (nil, nil) when the user has no assessment.
	GetUserAssessment(ctx context.Context, userID int64) (*models.UserAssessment, error)
	CreateUserAssessment(ctx context.Context, req *dto.CreateAssessmentRequest) (*models.UserAssessment, error)
	UpdateUserAssessment(ctx context.Context, userID int64, req *dto.UpdateAssessmentRequest) (*models.UserAssessment, error)
}

type assessmentService struct {
	store storage.Storage
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(store storage.Storage) AssessmentService {
	return &assessmentService{store: store}
}

func (s *assessmentService) GetUserAssessment(ctx context.Context, userID int64) (*models.UserAssessment, error) {
	return s.store.GetUserAssessment(ctx, userID)
}

func (s *assessmentService) CreateUserAssessment(ctx context.Context, req *dto.CreateAssessmentRequest) (*models.UserAssessment, error) {
	assessment := &models.UserAssessment{
		Course:           req.Course,
		Year:             req.Year,
		SkillCategoryIDs: req.SkillCategoryIDs,
		ExperienceLevel:  req.ExperienceLevel,
		CareerGoals:      req.CareerGoals,
		TimeCommitment:   req.TimeCommitment,
		Completed:        req.Completed,
	}
	return s.store.CreateUserAssessment(ctx, req.UserID, assessment)
}

func (s *assessmentService) UpdateUserAssessment(ctx context.Context, userID int64, req *dto.UpdateAssessmentRequest) (*models.UserAssessment, error) {
	patch := models.AssessmentPatch{
		Course:           req.Course,
		Year:             req.Year,
		SkillCategoryIDs: req.SkillCategoryIDs,
		ExperienceLevel:  req.ExperienceLevel,
		CareerGoals:      req.CareerGoals,
		TimeCommitment:   req.TimeCommitment,
		Completed:        req.Completed,
	}

	assessment, err := s.store.UpdateUserAssessment(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, apperrors.ErrAssessmentNotFound
	}
	return assessment, nil
}
