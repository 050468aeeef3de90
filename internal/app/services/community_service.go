package services

import (
	"context"

	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/storage"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
)

// CommunityService serves community groups and the join counter.
type CommunityService interface {
	GetCommunityGroups(ctx context.Context) ([]models.CommunityGroup, error)
	GetCommunityGroup(ctx context.Context, id int64) (*models.CommunityGroup, error)
	CreateCommunityGroup(ctx context.Context, req *dto.CreateCommunityGroupRequest) (*models.CommunityGroup, error)
	JoinCommunityGroup(ctx context.Context, groupID int64) (*models.CommunityGroup, error)
}

type communityService struct {
	store storage.Storage
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(store storage.Storage) CommunityService {
	return &communityService{store: store}
}

func (s *communityService) GetCommunityGroups(ctx context.Context) ([]models.CommunityGroup, error) {
	return s.store.GetCommunityGroups(ctx)
}

func (s *communityService) GetCommunityGroup(ctx context.Context, id int64) (*models.CommunityGroup, error) {
	group, err := s.store.GetCommunityGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.ErrGroupNotFound
	}
	return group, nil
}

func (s *communityService) CreateCommunityGroup(ctx context.Context, req *dto.CreateCommunityGroupRequest) (*models.CommunityGroup, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	group := &models.CommunityGroup{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Icon:         req.Icon,
		WhatsappLink: req.WhatsappLink,
		Active:       active,
	}
	return s.store.CreateCommunityGroup(ctx, group)
}

func (s *communityService) JoinCommunityGroup(ctx context.Context, groupID int64) (*models.CommunityGroup, error) {
	group, err := s.store.JoinCommunityGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.ErrGroupNotFound
	}
	return group, nil
}
