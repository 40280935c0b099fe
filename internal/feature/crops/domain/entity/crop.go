// Package entity defines the domain entities for the crops feature.
package entity

import (
	"time"

	categoryentity "cropscience_backend/internal/feature/categories/domain/entity"
)

// WaterRequirement is the watering level a crop needs.
type WaterRequirement string

const (
	WaterLow    WaterRequirement = "low"
	WaterMedium WaterRequirement = "medium"
	WaterHigh   WaterRequirement = "high"
)

// Valid reports whether w is one of the known watering levels.
func (w WaterRequirement) Valid() bool {
	switch w {
	case WaterLow, WaterMedium, WaterHigh:
		return true
	}
	return false
}

// Crop is an individual crop record. Every crop belongs to exactly one
// category; deleting the category deletes its crops.
type Crop struct {
	ID uint `gorm:"primaryKey"`

	// Name is the common name, at most 100 characters.
	Name string `gorm:"size:100;not null;index"`

	// ScientificName is the Latin name, at most 150 characters.
	ScientificName string `gorm:"size:150;not null;index"`

	CategoryID uint                    `gorm:"not null;index"`
	Category   categoryentity.Category `gorm:"constraint:OnDelete:CASCADE"`

	// Description is optional free text about the crop.
	Description string `gorm:"type:text"`

	// GrowthDurationDays is days from planting to harvest. Zero is a
	// valid value; negatives are rejected before reaching storage.
	GrowthDurationDays int `gorm:"not null"`

	WaterRequirements WaterRequirement `gorm:"size:10;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
