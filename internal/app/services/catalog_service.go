package services

import (
	"context"

	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/app/storage"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
)

// CatalogService serves the reference catalog: skill categories, skills and
// career roadmaps.
type CatalogService interface {
	GetSkillCategories(ctx context.Context) ([]models.SkillCategory, error)
	GetSkillsByCategory(ctx context.Context, categoryID int64) ([]models.Skill, error)
	// GetRoadmaps returns every roadmap, or only those sharing at least one
	// skill category with categoryIDs when the slice is non-empty.
	GetRoadmaps(ctx context.Context, categoryIDs []int64) ([]models.Roadmap, error)
	GetRoadmap(ctx context.Context, id int64) (*models.Roadmap, error)
}

type catalogService struct {
	store storage.Storage
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(store storage.Storage) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) GetSkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	return s.store.GetSkillCategories(ctx)
}

func (s *catalogService) GetSkillsByCategory(ctx context.Context, categoryID int64) ([]models.Skill, error) {
	return s.store.GetSkillsByCategory(ctx, categoryID)
}

func (s *catalogService) GetRoadmaps(ctx context.Context, categoryIDs []int64) ([]models.Roadmap, error) {
	if len(categoryIDs) > 0 {
		return s.store.GetRoadmapsBySkillCategories(ctx, categoryIDs)
	}
	return s.store.GetRoadmaps(ctx)
}

func (s *catalogService) GetRoadmap(ctx context.Context, id int64) (*models.Roadmap, error) {
	roadmap, err := s.store.GetRoadmap(ctx, id)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, apperrors.ErrRoadmapNotFound
	}
	return roadmap, nil
}
