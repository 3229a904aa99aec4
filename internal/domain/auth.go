package domain

import "time"

// Identity is the authenticated subject attached to a request.
type Identity struct {
	UserID   string
	UserName string
	RoleID   string
}

// TokenPurpose separates access tokens from refresh tokens.
type TokenPurpose string

const (
	PurposeAccess  TokenPurpose = "access"
	PurposeRefresh TokenPurpose = "refresh"
)

// Token is a signed session token and the times embedded in it.
type Token struct {
	ID        string
	Value     string
	Purpose   TokenPurpose
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is issued on every successful login.
type TokenPair struct {
	Access  Token
	Refresh Token
}
