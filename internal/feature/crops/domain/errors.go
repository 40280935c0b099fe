// Package domain defines domain-level errors for the crops feature.
package domain

import "errors"

var (
	// ErrCropNotFound indicates that no crop exists with the given ID.
	ErrCropNotFound = errors.New("crop not found")

	// ErrUnknownCategory indicates a write referenced a category that does
	// not exist. This is a validation failure, not a missing resource.
	ErrUnknownCategory = errors.New("referenced category does not exist")
)
