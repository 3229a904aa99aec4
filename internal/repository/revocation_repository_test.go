package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/book-purple/internal/repository"
)

func TestRedisRevocationRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := repository.NewRedisRevocationRepository(client)
	ctx := context.Background()

	t.Run("revoked until expiry", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

		revoked, err := repo.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
		assert.Greater(t, mr.TTL("auth:revoked:refresh:jti-1"), 59*time.Minute)

		mr.FastForward(time.Hour + time.Second)

		revoked, err = repo.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("already expired tokens are not stored", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)))
		assert.False(t, mr.Exists("auth:revoked:refresh:jti-2"))
	})

	t.Run("unknown token", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "jti-unknown")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("redis unavailable", func(t *testing.T) {
		mr.SetError("ERR simulated failure")
		defer mr.SetError("")

		_, err := repo.IsRevoked(ctx, "jti-1")
		assert.Error(t, err)
	})
}

func TestNopRevocationRepository(t *testing.T) {
	repo := repository.NewNopRevocationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
	revoked, err := repo.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}
