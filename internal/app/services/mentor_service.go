package services

import (
	"context"

	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/storage"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
)

// MentorService serves the mentor directory and mentorship requests.
type MentorService interface {
	GetMentors(ctx context.Context, filters storage.MentorFilters) ([]models.Mentor, error)
	GetMentor(ctx context.Context, id int64) (*models.Mentor, error)
	CreateMentorRequest(ctx context.Context, req *dto.CreateMentorRequestRequest) (*models.MentorRequest, error)
	GetMentorRequests(ctx context.Context, userID int64) ([]models.MentorRequest, error)
}

type mentorService struct {
	store storage.Storage
}

// NewMentorService creates a new MentorService
func NewMentorService(store storage.Storage) MentorService {
	return &mentorService{store: store}
}

func (s *mentorService) GetMentors(ctx context.Context, filters storage.MentorFilters) ([]models.Mentor, error) {
	return s.store.GetMentors(ctx, filters)
}

func (s *mentorService) GetMentor(ctx context.Context, id int64) (*models.Mentor, error) {
	mentor, err := s.store.GetMentor(ctx, id)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, apperrors.ErrMentorNotFound
	}
	return mentor, nil
}

func (s *mentorService) CreateMentorRequest(ctx context.Context, req *dto.CreateMentorRequestRequest) (*models.MentorRequest, error) {
	request := &models.MentorRequest{
		MentorID: req.MentorID,
		Message:  req.Message,
	}
	return s.store.CreateMentorRequest(ctx, req.UserID, request)
}

func (s *mentorService) GetMentorRequests(ctx context.Context, userID int64) ([]models.MentorRequest, error) {
	return s.store.GetMentorRequests(ctx, userID)
}
