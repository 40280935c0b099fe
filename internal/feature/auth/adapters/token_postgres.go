package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropscience_backend/internal/feature/auth/domain/entity"
	"cropscience_backend/internal/feature/auth/usecase"
)

// tokenPostgres is the database implementation of the TokenBlacklist
// interface, used when Redis is unavailable.
type tokenPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenPostgres implements TokenBlacklist.
var _ usecase.TokenBlacklist = (*tokenPostgres)(nil)

// NewTokenPostgres creates a new instance of tokenPostgres.
func NewTokenPostgres(db *gorm.DB) *tokenPostgres {
	return &tokenPostgres{db: db}
}

// Revoke records the token as blacklisted. Revoking an already revoked
// token is a no-op, so concurrent rotations of the same token cannot fail
// each other; the loser sees the jti as revoked on its next check.
func (r *tokenPostgres) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	model := RevokedTokenModelFromEntity(token)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
}

// IsRevoked reports whether the given jti has been blacklisted.
func (r *tokenPostgres) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RevokedTokenModel{}).
		Where("jti = ?", jti).
		Count(&count).Error
	return count > 0, err
}

// DeleteExpired removes blacklist entries whose tokens have expired anyway.
// Expired tokens fail signature verification, so keeping them adds nothing.
func (r *tokenPostgres) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&RevokedTokenModel{})
	return result.RowsAffected, result.Error
}
