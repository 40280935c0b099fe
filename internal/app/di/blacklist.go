// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "cropscience_backend/internal/feature/auth/adapters"
	"cropscience_backend/internal/feature/auth/usecase"
	"cropscience_backend/internal/platform/blacklist"
)

// NewTokenBlacklist creates a TokenBlacklist implementation.
// If Redis is available, it returns a Redis-backed implementation whose
// entries expire with the tokens. Otherwise, it falls back to the database.
func NewTokenBlacklist(rdb *redis.Client, db *gorm.DB) usecase.TokenBlacklist {
	if rdb != nil {
		return blacklist.NewTokenRedis(rdb, "revoked")
	}
	return authadapters.NewTokenPostgres(db)
}
