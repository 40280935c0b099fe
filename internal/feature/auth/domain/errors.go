// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUsernameAlreadyExists indicates that a user with the given username already exists.
	// This is returned during registration when attempting to create a duplicate user.
	ErrUsernameAlreadyExists = errors.New("user with this username already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// This is returned during login when username or password is invalid.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordMismatch indicates that password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidRefreshToken covers malformed, expired, revoked and
	// wrong-type refresh tokens. Callers deliberately get no finer detail.
	ErrInvalidRefreshToken = errors.New("invalid or revoked refresh token")
)
