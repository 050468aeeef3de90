package services

import (
	"context"

	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/app/storage"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
)

// JobService serves the job board.
type JobService interface {
	GetJobs(ctx context.Context, filters storage.JobFilters) ([]models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
}

type jobService struct {
	store storage.Storage
}

// NewJobService creates a new JobService
func NewJobService(store storage.Storage) JobService {
	return &jobService{store: store}
}

func (s *jobService) GetJobs(ctx context.Context, filters storage.JobFilters) ([]models.Job, error) {
	return s.store.GetJobs(ctx, filters)
}

func (s *jobService) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}
