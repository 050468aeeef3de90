package services

import (
	"context"
	"fmt"

	"github.com/skillsynergy/api/internal/app/models"
	"github.com/skillsynergy/api/internal/app/models/dto"
	"github.com/skillsynergy/api/internal/app/storage"
	"github.com/skillsynergy/api/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user account lifecycle
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
}

type userService struct {
	store storage.Storage
}

// NewUserService creates a new UserService
func NewUserService(store storage.Storage) UserService {
	return &userService{store: store}
}

func (s *userService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Course:   req.Course,
		Year:     req.Year,
	}
	return s.store.CreateUser(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	patch := models.UserPatch{
		FullName:        req.FullName,
		Course:          req.Course,
		Year:            req.Year,
		ProfileComplete: req.ProfileComplete,
	}

	user, err := s.store.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
