package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/smartwaste360/gateway/internal/pkg/constants"
	"github.com/smartwaste360/gateway/internal/pkg/database"
)

// TokenRepository persists the session's bearer token in Redis under a
// fixed key. The token is the only durable client-side state.
type TokenRepository struct {
	redisClient *database.RedisClient
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(redisClient *database.RedisClient) *TokenRepository {
	return &TokenRepository{redisClient: redisClient}
}

// Store persists the bearer token. No expiration is applied here: the token
// carries its own expiry and the backend rejects stale ones.
func (r *TokenRepository) Store(ctx context.Context, token string) error {
	if err := r.redisClient.Set(ctx, constants.KeySessionToken, token, 0); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Token returns the persisted token, empty string when none is stored
func (r *TokenRepository) Token(ctx context.Context) (string, error) {
	token, err := r.redisClient.Get(ctx, constants.KeySessionToken)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}

// Delete removes the persisted token
func (r *TokenRepository) Delete(ctx context.Context) error {
	if err := r.redisClient.Delete(ctx, constants.KeySessionToken); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
