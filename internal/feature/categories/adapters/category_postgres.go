// Package adapters provides repository implementations for the categories feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cropscience_backend/internal/feature/categories/domain"
	"cropscience_backend/internal/feature/categories/domain/entity"
	"cropscience_backend/internal/feature/categories/usecase"
	cropentity "cropscience_backend/internal/feature/crops/domain/entity"
)

// categoryPostgres is a GORM implementation of the CategoryRepository interface.
type categoryPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure categoryPostgres implements CategoryRepository.
var _ usecase.CategoryRepository = (*categoryPostgres)(nil)

// NewCategoryPostgres creates a new instance of categoryPostgres.
func NewCategoryPostgres(db *gorm.DB) *categoryPostgres {
	return &categoryPostgres{db: db}
}

// Create persists a new category, enforcing name uniqueness inside a
// transaction. The unique index backs the check up at the storage level.
func (r *categoryPostgres) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrCategoryNameTaken
		}
		return tx.Create(category).Error
	})
}

// List returns all categories ordered by name.
func (r *categoryPostgres) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID returns the category with the given ID.
func (r *categoryPostgres) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Update applies the non-nil fields of upd to the stored category.
// A name change re-checks uniqueness against other categories.
func (r *categoryPostgres) Update(ctx context.Context, id uint, upd usecase.CategoryUpdate) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}

		if upd.Name != nil && *upd.Name != category.Name {
			var count int64
			if err := tx.Model(&entity.Category{}).
				Where("name = ? AND id <> ?", *upd.Name, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ErrCategoryNameTaken
			}
			category.Name = *upd.Name
		}
		if upd.Description != nil {
			category.Description = *upd.Description
		}

		return tx.Save(&category).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes the category and cascades to its crops in one transaction,
// so the cascade holds even where foreign key enforcement is off (the
// SQLite test databases).
func (r *categoryPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category entity.Category
		if err := tx.Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&cropentity.Crop{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
