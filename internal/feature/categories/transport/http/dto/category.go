// Package dto defines data transfer objects for the categories HTTP API.
package dto

import (
	"time"

	"cropscience_backend/internal/feature/categories/domain/entity"
)

// CategoryCreateReq represents the request body for creating a category.
// Read-only fields (id, created_at) are simply never bound.
type CategoryCreateReq struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// CategoryUpdateReq represents the request body for PUT and PATCH.
// Pointer fields distinguish "absent" from "empty" so PATCH can be partial.
type CategoryUpdateReq struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// CategoryItem is the single category shape used in every response.
type CategoryItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// NewCategoryItem maps a category entity to its response shape.
func NewCategoryItem(c *entity.Category) CategoryItem {
	return CategoryItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
