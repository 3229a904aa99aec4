package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/book-purple/internal/domain"
)

var (
	// ErrInvalidToken is returned for malformed, forged or expired tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongPurpose is returned when a valid token is presented for the other purpose.
	ErrWrongPurpose = errors.New("unexpected token purpose")
)

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// WithClock returns a copy of the manager that reads time from now.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	return &TokenManager{secret: tm.secret, now: now}
}

// Claims describes JWT payload.
type Claims struct {
	UserID   string              `json:"userId"`
	UserName string              `json:"userName"`
	Role     string              `json:"role"`
	Category domain.TokenPurpose `json:"category"`
	jwt.RegisteredClaims
}

// Identity returns the subject carried by the claims.
func (c *Claims) Identity() domain.Identity {
	return domain.Identity{UserID: c.UserID, UserName: c.UserName, RoleID: c.Role}
}

// ExpiresAtTime returns the expiry encoded in the claims.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Issue builds and signs a token for the subject that expires ttlMinutes from now.
func (tm *TokenManager) Issue(userID, userName, role string, purpose domain.TokenPurpose, ttlMinutes int) (domain.Token, error) {
	// exp and iat are encoded with second precision
	issuedAt := tm.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(time.Duration(ttlMinutes) * time.Minute)
	id := uuid.NewString()

	claims := &Claims{
		UserID:   userID,
		UserName: userName,
		Role:     role,
		Category: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return domain.Token{}, fmt.Errorf("sign %s token: %w", purpose, err)
	}

	return domain.Token{
		ID:        id,
		Value:     signed,
		Purpose:   purpose,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate reports whether the token signature verifies and it has not expired.
func (tm *TokenManager) Validate(tokenStr string) bool {
	_, err := tm.Decode(tokenStr)
	return err == nil
}

// Decode validates and returns claims. Every failure wraps ErrInvalidToken.
func (tm *TokenManager) Decode(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)

	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// DecodeFor decodes the token and requires the given purpose.
func (tm *TokenManager) DecodeFor(tokenStr string, purpose domain.TokenPurpose) (*Claims, error) {
	claims, err := tm.Decode(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Category != purpose {
		return nil, fmt.Errorf("%w: want %s, got %q", ErrWrongPurpose, purpose, claims.Category)
	}
	return claims, nil
}
