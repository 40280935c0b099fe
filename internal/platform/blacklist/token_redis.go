// Package blacklist provides a Redis-backed refresh token blacklist.
package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cropscience_backend/internal/feature/auth/domain/entity"
)

// TokenRedis implements usecase.TokenBlacklist using Redis. Entries expire
// together with the underlying token, so the set never needs sweeping.
type TokenRedis struct {
	client *redis.Client
	prefix string
}

// NewTokenRedis creates a new TokenRedis instance.
func NewTokenRedis(client *redis.Client, prefix string) *TokenRedis {
	return &TokenRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a revoked token.
func (r *TokenRedis) tokenKey(jti string) string {
	return fmt.Sprintf("%s:%s", r.prefix, jti)
}

// Revoke records the token as blacklisted until its natural expiry.
func (r *TokenRedis) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		// Already expired; rejected by signature verification anyway.
		return nil
	}
	return r.client.Set(ctx, r.tokenKey(token.JTI), token.RevokedAt.Unix(), ttl).Err()
}

// IsRevoked reports whether the given jti has been blacklisted.
func (r *TokenRedis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if err := r.client.Get(ctx, r.tokenKey(jti)).Err(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
