// Package usecase implements the business logic for category operations.
package usecase

import (
	"context"

	"cropscience_backend/internal/feature/categories/domain/entity"
)

// CategoryUpdate carries the writable category fields for an update.
// Nil fields keep their stored values, which makes PATCH a partial update;
// PUT handlers set every field.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// CategoryRepository abstracts the persistence layer for categories.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CategoryRepository interface {
	// Create persists a new category. It returns domain.ErrCategoryNameTaken
	// when the name is already in use.
	Create(ctx context.Context, category *entity.Category) error

	// List returns all categories ordered by name.
	List(ctx context.Context) ([]entity.Category, error)

	// FindByID returns the category with the given ID or domain.ErrCategoryNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// Update applies the non-nil fields and returns the mutated category.
	Update(ctx context.Context, id uint, upd CategoryUpdate) (*entity.Category, error)

	// Delete removes the category and every crop referencing it, atomically.
	Delete(ctx context.Context, id uint) error
}

// CategoryUsecase provides business logic for category operations.
type CategoryUsecase struct {
	repo CategoryRepository
}

// NewCategoryUsecase creates a new CategoryUsecase with the given repository.
func NewCategoryUsecase(r CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{repo: r}
}

// Create stores a new category.
func (u *CategoryUsecase) Create(ctx context.Context, name, description string) (*entity.Category, error) {
	category := &entity.Category{Name: name, Description: description}
	if err := u.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories ordered by name.
func (u *CategoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	return u.repo.List(ctx)
}

// Get returns a single category by ID.
func (u *CategoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return u.repo.FindByID(ctx, id)
}

// Update mutates a category and returns the stored result.
func (u *CategoryUsecase) Update(ctx context.Context, id uint, upd CategoryUpdate) (*entity.Category, error) {
	return u.repo.Update(ctx, id, upd)
}

// Delete removes a category together with all crops that reference it.
func (u *CategoryUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
