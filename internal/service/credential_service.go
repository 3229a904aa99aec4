package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/book-purple/internal/auth"
	"github.com/spec-kit/book-purple/internal/domain"
	"github.com/spec-kit/book-purple/internal/repository"
	apperrors "github.com/spec-kit/book-purple/pkg/util"
)

// CredentialVerifier checks submitted passwords against stored credential records.
type CredentialVerifier struct {
	users repository.UserRepository
}

// NewCredentialVerifier builds the verifier.
func NewCredentialVerifier(users repository.UserRepository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

// Verify returns a NotFound error for unknown users and Unauthorized for a wrong
// password or a disabled account.
func (v *CredentialVerifier) Verify(ctx context.Context, userID, password string) (domain.Identity, error) {
	user, err := v.Lookup(ctx, userID)
	if err != nil {
		return domain.Identity{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return domain.Identity{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return user.Identity(), nil
}

// Lookup loads an active user.
func (v *CredentialVerifier) Lookup(ctx context.Context, userID string) (*domain.User, error) {
	user, err := v.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user " + userID)
		}
		return nil, apperrors.NewInternalError(err)
	}
	if !user.Active() {
		return nil, apperrors.NewUnauthorized("account disabled")
	}
	return user, nil
}
