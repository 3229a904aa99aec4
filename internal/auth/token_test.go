package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/book-purple/internal/domain"
)

var issuedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenManager_IssueAndDecode(t *testing.T) {
	tm := NewTokenManager("test-secret").WithClock(fixedClock(issuedAt.Add(400 * time.Millisecond)))

	token, err := tm.Issue("alice", "Alice", "ROLE_USER", domain.PurposeAccess, 30)
	require.NoError(t, err)

	assert.NotEmpty(t, token.ID)
	assert.Equal(t, domain.PurposeAccess, token.Purpose)
	assert.Equal(t, issuedAt, token.IssuedAt)
	assert.Equal(t, issuedAt.Add(30*time.Minute), token.ExpiresAt)
	assert.True(t, tm.Validate(token.Value))

	claims, err := tm.Decode(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserID)
	assert.Equal(t, "Alice", claims.UserName)
	assert.Equal(t, "ROLE_USER", claims.Role)
	assert.Equal(t, domain.PurposeAccess, claims.Category)
	assert.Equal(t, token.ID, claims.ID)
	assert.True(t, token.ExpiresAt.Equal(claims.ExpiresAtTime()))
	assert.Equal(t, domain.Identity{UserID: "alice", UserName: "Alice", RoleID: "ROLE_USER"}, claims.Identity())
}

func TestTokenManager_ExpiryBoundary(t *testing.T) {
	tm := NewTokenManager("test-secret").WithClock(fixedClock(issuedAt))
	token, err := tm.Issue("alice", "Alice", "ROLE_USER", domain.PurposeRefresh, 1440)
	require.NoError(t, err)

	tests := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{name: "just issued", at: issuedAt, valid: true},
		{name: "one second before expiry", at: token.ExpiresAt.Add(-time.Second), valid: true},
		{name: "exactly at expiry", at: token.ExpiresAt, valid: false},
		{name: "after expiry", at: token.ExpiresAt.Add(time.Hour), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tm.WithClock(fixedClock(tt.at)).Validate(token.Value))
		})
	}

	_, err = tm.WithClock(fixedClock(token.ExpiresAt)).Decode(token.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManager_RejectsBadInput(t *testing.T) {
	tm := NewTokenManager("test-secret")
	token, err := tm.Issue("alice", "Alice", "ROLE_USER", domain.PurposeAccess, 30)
	require.NoError(t, err)

	other, err := NewTokenManager("other-secret").Issue("alice", "Alice", "ROLE_USER", domain.PurposeAccess, 30)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId":   "alice",
		"category": "access",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   "alice",
		"category": "access",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	parts := strings.Split(token.Value, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	for name, input := range map[string]string{
		"empty":          "",
		"garbage":        "garbage",
		"wrong secret":   other.Value,
		"alg none":       noneAlg,
		"missing exp":    noExpiry,
		"tampered claim": tampered,
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, tm.Validate(input))
			_, err := tm.Decode(input)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenManager_DecodeFor(t *testing.T) {
	tm := NewTokenManager("test-secret")
	refresh, err := tm.Issue("alice", "Alice", "ROLE_USER", domain.PurposeRefresh, 1440)
	require.NoError(t, err)

	// a refresh token still validates, it just has the other purpose
	assert.True(t, tm.Validate(refresh.Value))

	_, err = tm.DecodeFor(refresh.Value, domain.PurposeAccess)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	claims, err := tm.DecodeFor(refresh.Value, domain.PurposeRefresh)
	require.NoError(t, err)
	assert.Equal(t, domain.PurposeRefresh, claims.Category)

	_, err = tm.DecodeFor("garbage", domain.PurposeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrWrongPurpose)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct", 4)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "correct"))
	assert.Error(t, ComparePassword(hash, "wrong"))
	assert.Error(t, ComparePassword("not-a-hash", "correct"))
}
