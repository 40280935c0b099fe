package dto

import (
	"time"

	categorydto "cropscience_backend/internal/feature/categories/transport/http/dto"
	"cropscience_backend/internal/feature/crops/domain/entity"
)

// CropItem is the compact crop shape used in list responses: scalar fields
// plus the bare category ID.
type CropItem struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	ScientificName     string `json:"scientific_name"`
	Category           uint   `json:"category"`
	WaterRequirements  string `json:"water_requirements"`
	GrowthDurationDays int    `json:"growth_duration_days"`
	CreatedAt          string `json:"created_at"`
}

// NewCropItem maps a crop entity to its compact shape.
func NewCropItem(c *entity.Crop) CropItem {
	return CropItem{
		ID:                 c.ID,
		Name:               c.Name,
		ScientificName:     c.ScientificName,
		Category:           c.CategoryID,
		WaterRequirements:  string(c.WaterRequirements),
		GrowthDurationDays: c.GrowthDurationDays,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
	}
}

// CropDetail is the expanded crop shape used for single-item responses:
// scalar fields plus the full category sub-object.
type CropDetail struct {
	ID                 uint                     `json:"id"`
	Name               string                   `json:"name"`
	ScientificName     string                   `json:"scientific_name"`
	Category           categorydto.CategoryItem `json:"category"`
	Description        string                   `json:"description"`
	WaterRequirements  string                   `json:"water_requirements"`
	GrowthDurationDays int                      `json:"growth_duration_days"`
	CreatedAt          string                   `json:"created_at"`
	UpdatedAt          string                   `json:"updated_at"`
}

// NewCropDetail maps a crop entity (category resolved) to its detail shape.
func NewCropDetail(c *entity.Crop) CropDetail {
	return CropDetail{
		ID:                 c.ID,
		Name:               c.Name,
		ScientificName:     c.ScientificName,
		Category:           categorydto.NewCategoryItem(&c.Category),
		Description:        c.Description,
		WaterRequirements:  string(c.WaterRequirements),
		GrowthDurationDays: c.GrowthDurationDays,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339),
	}
}

// PaginatedCrops is the envelope of the crop list endpoint. Next and
// Previous are absolute page URLs; null marks the respective boundary.
type PaginatedCrops struct {
	Count    int64      `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []CropItem `json:"results"`
}
