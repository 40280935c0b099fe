package adapters

import (
	"time"

	"cropscience_backend/internal/feature/auth/domain/entity"
)

// RevokedTokenModel is the GORM model for the revoked_tokens table, the
// database fallback for the refresh token blacklist.
type RevokedTokenModel struct {
	JTI       string    `gorm:"primaryKey;size:36"`
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	RevokedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *RevokedTokenModel) ToEntity() *entity.RevokedToken {
	return &entity.RevokedToken{
		JTI:       m.JTI,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
	}
}

// RevokedTokenModelFromEntity converts a domain entity to a GORM model.
func RevokedTokenModelFromEntity(t *entity.RevokedToken) *RevokedTokenModel {
	return &RevokedTokenModel{
		JTI:       t.JTI,
		UserID:    t.UserID,
		ExpiresAt: t.ExpiresAt,
		RevokedAt: t.RevokedAt,
	}
}
