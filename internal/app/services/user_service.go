package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/app/models/dto"
	"github.com/coursecat/api/internal/pkg/apperrors"
	"github.com/coursecat/api/internal/pkg/auth"
)

// UserService handles user registration and login
type UserService struct {
	userStore UserStore
	roleStore RoleStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore, roleStore RoleStore) *UserService {
	return &UserService{
		userStore: userStore,
		roleStore: roleStore,
	}
}

// Register creates a new user with a hashed password
func (s *UserService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Login) == "" {
		return nil, fmt.Errorf("%w: login cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	// Optional role reference must resolve before the user is created
	if req.RoleID != nil {
		if _, err := s.roleStore.GetByID(ctx, *req.RoleID); err != nil {
			if errors.Is(err, apperrors.ErrRoleNotFound) {
				return nil, apperrors.NewBadRequestError("Role not found")
			}
			return nil, fmt.Errorf("error checking role: %w", err)
		}
	}

	// Friendly pre-check; the unique constraint on login remains the
	// real guard under concurrent registrations.
	exists, err := s.userStore.LoginExists(ctx, req.Login)
	if err != nil {
		return nil, fmt.Errorf("error checking login: %w", err)
	}
	if exists {
		return nil, apperrors.ErrLoginAlreadyTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Login:    req.Login,
		Password: hashed,
		RoleID:   req.RoleID,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies a user's credentials. No session or token is issued;
// the caller only learns whether the credentials are correct.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userStore.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewInvalidCredentialsError("Incorrect username")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	ok, err := auth.CheckPassword(user.Password, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewInvalidCredentialsError("Incorrect password")
	}

	return user, nil
}
