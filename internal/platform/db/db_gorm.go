// Package db opens and migrates the application database.
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "cropscience_backend/internal/feature/auth/adapters"
	authentity "cropscience_backend/internal/feature/auth/domain/entity"
	categoryentity "cropscience_backend/internal/feature/categories/domain/entity"
	cropentity "cropscience_backend/internal/feature/crops/domain/entity"
	"cropscience_backend/internal/platform/config"
)

// OpenDB connects to PostgreSQL, retrying for up to 60 seconds so the
// service survives a database that is still starting up next to it.
func OpenDB(cfg config.DBConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.Migrate {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the schema for every persisted entity.
// Shared with the seed command.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&authadapters.RevokedTokenModel{},
		&categoryentity.Category{},
		&cropentity.Crop{},
	)
}
