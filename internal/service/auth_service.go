package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/book-purple/internal/auth"
	"github.com/spec-kit/book-purple/internal/config"
	"github.com/spec-kit/book-purple/internal/domain"
	"github.com/spec-kit/book-purple/internal/events"
	"github.com/spec-kit/book-purple/internal/repository"
	apperrors "github.com/spec-kit/book-purple/pkg/util"
)

// LoginResult is returned for a successful login.
type LoginResult struct {
	Identity domain.Identity
	Tokens   domain.TokenPair
}

// RefreshResult is returned when a refresh token is exchanged for a new access token.
type RefreshResult struct {
	Identity domain.Identity
	Access   domain.Token
}

// AuthService coordinates login, refresh and logout flows.
type AuthService struct {
	verifier    *CredentialVerifier
	revocations repository.RevocationRepository
	tokenMgr    *auth.TokenManager
	events      events.Dispatcher
	logger      *zap.Logger
	accessTTL   int
	refreshTTL  int
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo       repository.UserRepository
	RevocationRepo repository.RevocationRepository
	TokenManager   *auth.TokenManager
	Events         events.Dispatcher
	Logger         *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	revocations := deps.RevocationRepo
	if revocations == nil {
		revocations = repository.NewNopRevocationRepository()
	}
	tokenMgr := deps.TokenManager
	if tokenMgr == nil {
		tokenMgr = auth.NewTokenManager(cfg.JWTSecret)
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dispatcher := deps.Events
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
	}

	return &AuthService{
		verifier:    NewCredentialVerifier(deps.UserRepo),
		revocations: revocations,
		tokenMgr:    tokenMgr,
		events:      dispatcher,
		logger:      logger,
		accessTTL:   cfg.AccessTokenTTLMinutes,
		refreshTTL:  cfg.RefreshTokenTTLMinutes,
	}
}

// Login verifies the credentials and issues an access and a refresh token.
func (s *AuthService) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	identity, err := s.verifier.Verify(ctx, userID, password)
	if err != nil {
		s.publish(ctx, events.New(events.EventLoginFailed, userID).WithReason(err))
		return nil, err
	}

	access, err := s.issue(identity, domain.PurposeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issue(identity, domain.PurposeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.EventLoginSucceeded, identity.UserID))
	return &LoginResult{
		Identity: identity,
		Tokens:   domain.TokenPair{Access: access, Refresh: refresh},
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The user must still exist
// and be active.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	claims, err := s.refreshClaims(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.verifier.Lookup(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	identity := user.Identity()

	access, err := s.issue(identity, domain.PurposeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.EventTokenRefreshed, identity.UserID))
	return &RefreshResult{Identity: identity, Access: access}, nil
}

// Logout validates the refresh token and records its revocation. With the default
// no-op revocation store the token stays valid until it expires.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.refreshClaims(ctx, refreshToken)
	if err != nil {
		return err
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
		return apperrors.NewInternalError(err)
	}
	s.publish(ctx, events.New(events.EventLogout, claims.UserID))
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// RefreshTTL is the lifetime of refresh tokens and of the cookie carrying them.
func (s *AuthService) RefreshTTL() time.Duration {
	return time.Duration(s.refreshTTL) * time.Minute
}

func (s *AuthService) refreshClaims(ctx context.Context, refreshToken string) (*auth.Claims, error) {
	if refreshToken == "" {
		return nil, apperrors.NewMissingCredentialCookie("refresh")
	}
	claims, err := s.tokenMgr.DecodeFor(refreshToken, domain.PurposeRefresh)
	if err != nil {
		return nil, apperrors.NewInvalidToken(err)
	}
	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if revoked {
		return nil, apperrors.NewInvalidToken(fmt.Errorf("%w: refresh token revoked", auth.ErrInvalidToken))
	}
	return claims, nil
}

func (s *AuthService) issue(identity domain.Identity, purpose domain.TokenPurpose, ttlMinutes int) (domain.Token, error) {
	token, err := s.tokenMgr.Issue(identity.UserID, identity.UserName, identity.RoleID, purpose, ttlMinutes)
	if err != nil {
		return domain.Token{}, apperrors.NewInternalError(err)
	}
	return token, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("auth event handler failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
