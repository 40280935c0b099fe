// Package entity defines the domain entities for the categories feature.
package entity

import "time"

// Category groups crops under a common name (e.g. Cereals, Legumes).
// Names are unique across the whole store.
type Category struct {
	// ID is the unique identifier for the category.
	ID uint `gorm:"primaryKey"`

	// Name is the category name, unique and at most 100 characters.
	Name string `gorm:"uniqueIndex;size:100;not null"`

	// Description is optional free text about the category.
	Description string `gorm:"type:text"`

	// CreatedAt is set once on insert and never updated.
	CreatedAt time.Time
}
