package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedRefreshPrefix = "auth:revoked:refresh:"

// RevocationRepository records refresh tokens that were logged out before expiry.
type RevocationRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisRevocationRepository struct {
	client redis.Cmdable
	now    func() time.Time
}

// NewRedisRevocationRepository keeps revoked token ids in Redis until the token expires.
func NewRedisRevocationRepository(client redis.Cmdable) RevocationRepository {
	return &redisRevocationRepository{client: client, now: time.Now}
}

func (r *redisRevocationRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedRefreshPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func (r *redisRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedRefreshPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check refresh revocation: %w", err)
	}
	return n > 0, nil
}

type nopRevocationRepository struct{}

// NewNopRevocationRepository never revokes; tokens stay valid until they expire.
func NewNopRevocationRepository() RevocationRepository {
	return nopRevocationRepository{}
}

func (nopRevocationRepository) Revoke(context.Context, string, time.Time) error { return nil }

func (nopRevocationRepository) IsRevoked(context.Context, string) (bool, error) { return false, nil }
