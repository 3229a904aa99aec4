package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/book-purple/internal/domain"
	"github.com/spec-kit/book-purple/internal/repository"
	apperrors "github.com/spec-kit/book-purple/pkg/util"
)

// UserService serves user lookups for application routes.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get returns the stored user. Deleted accounts are reported as not found.
func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.NewInternalError(err)
	}
	if user.DelYn == domain.FlagYes {
		return nil, apperrors.NewNotFound("user")
	}
	return user, nil
}
