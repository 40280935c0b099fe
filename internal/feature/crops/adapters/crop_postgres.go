// Package adapters provides repository implementations for the crops feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	categoryentity "cropscience_backend/internal/feature/categories/domain/entity"
	"cropscience_backend/internal/feature/crops/domain"
	"cropscience_backend/internal/feature/crops/domain/entity"
	"cropscience_backend/internal/feature/crops/usecase"
)

// cropPostgres is a GORM implementation of the CropRepository interface.
type cropPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure cropPostgres implements CropRepository.
var _ usecase.CropRepository = (*cropPostgres)(nil)

// NewCropPostgres creates a new instance of cropPostgres.
func NewCropPostgres(db *gorm.DB) *cropPostgres {
	return &cropPostgres{db: db}
}

// Create persists a new crop after verifying the referenced category exists.
// The check and the insert share one transaction so a concurrent cascade
// delete cannot leave an orphan.
func (r *cropPostgres) Create(ctx context.Context, crop *entity.Crop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&categoryentity.Category{}).Where("id = ?", crop.CategoryID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrUnknownCategory
		}
		// Omit the association so GORM does not try to upsert the category.
		return tx.Omit("Category").Create(crop).Error
	})
}

// FindByID returns the crop with its category preloaded.
func (r *cropPostgres) FindByID(ctx context.Context, id uint) (*entity.Crop, error) {
	var crop entity.Crop
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&crop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCropNotFound
		}
		return nil, err
	}
	return &crop, nil
}

// filtered applies the filter and search stages of the query to tx.
// LOWER-based matching keeps the search case-insensitive on both PostgreSQL
// and the SQLite databases the tests run on.
func filtered(tx *gorm.DB, q usecase.CropQuery) *gorm.DB {
	if q.CategoryID != nil {
		tx = tx.Where("category_id = ?", *q.CategoryID)
	}
	if q.WaterRequirements != "" {
		tx = tx.Where("water_requirements = ?", q.WaterRequirements)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(scientific_name) LIKE ?", pattern, pattern)
	}
	return tx
}

// List runs the pipeline stages in their fixed order: filter, search,
// ordering, pagination. The total counts all matches, not just the page.
func (r *cropPostgres) List(ctx context.Context, q usecase.CropQuery) ([]entity.Crop, int64, error) {
	var total int64
	if err := filtered(r.db.WithContext(ctx).Model(&entity.Crop{}), q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := q.OrderField + " ASC"
	if q.OrderDesc {
		order = q.OrderField + " DESC"
	}

	var crops []entity.Crop
	if err := filtered(r.db.WithContext(ctx), q).
		Order(order).
		Order("id ASC"). // stable tiebreak so pages never shuffle
		Limit(q.PageSize).
		Offset(q.Offset()).
		Find(&crops).Error; err != nil {
		return nil, 0, err
	}
	return crops, total, nil
}

// ListAll returns every crop with its category, ordered by name.
func (r *cropPostgres) ListAll(ctx context.Context) ([]entity.Crop, error) {
	var crops []entity.Crop
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("name ASC").
		Order("id ASC").
		Find(&crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

// Update applies the non-nil fields of upd. A category change is validated
// the same way as on create. UpdatedAt refreshes via GORM on save.
func (r *cropPostgres) Update(ctx context.Context, id uint, upd usecase.CropUpdate) (*entity.Crop, error) {
	var crop entity.Crop
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&crop).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCropNotFound
			}
			return err
		}

		if upd.CategoryID != nil && *upd.CategoryID != crop.CategoryID {
			var count int64
			if err := tx.Model(&categoryentity.Category{}).Where("id = ?", *upd.CategoryID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrUnknownCategory
			}
			crop.CategoryID = *upd.CategoryID
		}
		if upd.Name != nil {
			crop.Name = *upd.Name
		}
		if upd.ScientificName != nil {
			crop.ScientificName = *upd.ScientificName
		}
		if upd.Description != nil {
			crop.Description = *upd.Description
		}
		if upd.GrowthDurationDays != nil {
			crop.GrowthDurationDays = *upd.GrowthDurationDays
		}
		if upd.WaterRequirements != nil {
			crop.WaterRequirements = *upd.WaterRequirements
		}

		return tx.Omit("Category").Save(&crop).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes the crop with the given ID.
func (r *cropPostgres) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Crop{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}
