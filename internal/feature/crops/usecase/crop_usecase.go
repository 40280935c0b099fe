// Package usecase implements the business logic for crop operations.
package usecase

import (
	"bytes"
	"context"

	"cropscience_backend/internal/feature/crops/domain/entity"
)

// CropUpdate carries the writable crop fields for an update. Nil fields
// keep their stored values (PATCH); PUT handlers set every field.
type CropUpdate struct {
	Name               *string
	ScientificName     *string
	CategoryID         *uint
	Description        *string
	GrowthDurationDays *int
	WaterRequirements  *entity.WaterRequirement
}

// CropRepository abstracts the persistence layer for crops.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CropRepository interface {
	// Create persists a new crop. It returns domain.ErrUnknownCategory when
	// the referenced category does not exist.
	Create(ctx context.Context, crop *entity.Crop) error

	// FindByID returns the crop with its category resolved, or
	// domain.ErrCropNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Crop, error)

	// List applies the query stages (filter, search, order, paginate) and
	// returns one page of crops plus the total match count.
	List(ctx context.Context, q CropQuery) ([]entity.Crop, int64, error)

	// ListAll returns every crop with its category resolved, ordered by
	// name. Used by the export, which bypasses the query pipeline.
	ListAll(ctx context.Context) ([]entity.Crop, error)

	// Update applies the non-nil fields and returns the mutated crop with
	// its category resolved.
	Update(ctx context.Context, id uint, upd CropUpdate) (*entity.Crop, error)

	// Delete removes the crop or returns domain.ErrCropNotFound.
	Delete(ctx context.Context, id uint) error
}

// CropExporter renders crops into a downloadable spreadsheet.
type CropExporter interface {
	WriteCrops(crops []entity.Crop) (*bytes.Buffer, error)
}

// CropUsecase provides business logic for crop operations.
type CropUsecase struct {
	repo     CropRepository
	exporter CropExporter
}

// NewCropUsecase creates a new CropUsecase.
func NewCropUsecase(repo CropRepository, exporter CropExporter) *CropUsecase {
	return &CropUsecase{repo: repo, exporter: exporter}
}

// Create stores a new crop and returns it with the category resolved.
func (u *CropUsecase) Create(ctx context.Context, crop *entity.Crop) (*entity.Crop, error) {
	if err := u.repo.Create(ctx, crop); err != nil {
		return nil, err
	}
	// Re-read so the response carries the expanded category.
	return u.repo.FindByID(ctx, crop.ID)
}

// Get returns a single crop with its category resolved.
func (u *CropUsecase) Get(ctx context.Context, id uint) (*entity.Crop, error) {
	return u.repo.FindByID(ctx, id)
}

// List runs the query pipeline and returns the requested page.
// A page past the end is a valid, empty page.
func (u *CropUsecase) List(ctx context.Context, q CropQuery) (CropPage, error) {
	items, total, err := u.repo.List(ctx, q)
	if err != nil {
		return CropPage{}, err
	}
	return CropPage{Items: items, Total: total, Query: q}, nil
}

// Update mutates a crop and returns the stored result.
func (u *CropUsecase) Update(ctx context.Context, id uint, upd CropUpdate) (*entity.Crop, error) {
	return u.repo.Update(ctx, id, upd)
}

// Delete removes a crop.
func (u *CropUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// Export renders the entire crop store as a spreadsheet, ignoring any
// filtering or pagination.
func (u *CropUsecase) Export(ctx context.Context) (*bytes.Buffer, error) {
	crops, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.exporter.WriteCrops(crops)
}
