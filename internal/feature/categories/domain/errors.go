// Package domain defines domain-level errors for the categories feature.
package domain

import "errors"

var (
	// ErrCategoryNotFound indicates that no category exists with the given ID.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameTaken indicates a write would violate name uniqueness.
	ErrCategoryNameTaken = errors.New("category with this name already exists")
)
