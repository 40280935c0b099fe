// Package dto defines data transfer objects for the crops HTTP API.
package dto

// CropCreateReq represents the request body for creating a crop.
// The category is written by ID; read-only fields are never bound.
type CropCreateReq struct {
	Name               string `json:"name" binding:"required,max=100"`
	ScientificName     string `json:"scientific_name" binding:"required,max=150"`
	CategoryID         uint   `json:"category_id" binding:"required"`
	Description        string `json:"description"`
	GrowthDurationDays *int   `json:"growth_duration_days" binding:"required,gte=0"`
	WaterRequirements  string `json:"water_requirements" binding:"required,oneof=low medium high"`
}

// CropUpdateReq represents the request body for PATCH. Pointer fields
// distinguish "absent" from "zero" so partial updates work.
type CropUpdateReq struct {
	Name               *string `json:"name" binding:"omitempty,max=100"`
	ScientificName     *string `json:"scientific_name" binding:"omitempty,max=150"`
	CategoryID         *uint   `json:"category_id"`
	Description        *string `json:"description"`
	GrowthDurationDays *int    `json:"growth_duration_days" binding:"omitempty,gte=0"`
	WaterRequirements  *string `json:"water_requirements" binding:"omitempty,oneof=low medium high"`
}

// CropListQuery binds the crop list query parameters. Everything is a
// string here; normalization is permissive and happens in the usecase.
type CropListQuery struct {
	Category          string `form:"category"`
	WaterRequirements string `form:"water_requirements"`
	Search            string `form:"search"`
	Ordering          string `form:"ordering"`
	Page              string `form:"page"`
	PageSize          string `form:"page_size"`
}
