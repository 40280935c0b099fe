// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cropscience_backend/internal/feature/auth/domain"
	"cropscience_backend/internal/feature/auth/domain/entity"
	jwtmw "cropscience_backend/internal/platform/jwt"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrUsernameAlreadyExists
	// when the username is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves the user with the given username.
	// It returns domain.ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	// It returns domain.ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenBlacklist abstracts the store of revoked refresh tokens.
type TokenBlacklist interface {
	// Revoke records the token as blacklisted until its natural expiry.
	Revoke(ctx context.Context, token *entity.RevokedToken) error

	// IsRevoked reports whether the given jti has been blacklisted.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenGenerator signs and verifies JWT token pairs.
type TokenGenerator interface {
	GeneratePair(userID uint, username string) (jwtmw.TokenPair, error)
	ParseRefresh(token string) (*jwtmw.RefreshClaims, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users     UserRepository
	tokens    TokenGenerator
	blacklist TokenBlacklist
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, blacklist TokenBlacklist) *authUsecase {
	return &authUsecase{
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password and immediately issues
// a token pair so the user is logged in right after signing up.
func (u *authUsecase) Register(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error) {
	if err := validatePassword(password); err != nil {
		return nil, jwtmw.TokenPair{}, err
	}
	if password != password2 {
		return nil, jwtmw.TokenPair{}, domain.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, jwtmw.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, jwtmw.TokenPair{}, err
	}

	pair, err := u.tokens.GeneratePair(user.ID, user.Username)
	if err != nil {
		return nil, jwtmw.TokenPair{}, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return user, pair, nil
}

// Login authenticates a user and returns a token pair on success.
// To mitigate timing attacks, bcrypt comparison runs even when the user
// does not exist.
func (u *authUsecase) Login(ctx context.Context, username, password string) (jwtmw.TokenPair, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// Dummy hash so bcrypt.CompareHashAndPassword is always called.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// Generic error regardless of whether the user or the password failed.
	if err != nil || compareErr != nil {
		return jwtmw.TokenPair{}, domain.ErrInvalidCredentials
	}

	pair, err := u.tokens.GeneratePair(user.ID, user.Username)
	if err != nil {
		return jwtmw.TokenPair{}, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return pair, nil
}

// Refresh rotates a refresh token: the presented token is verified, checked
// against the blacklist, blacklisted itself, and only then a new pair is
// issued. A rotated token can never be replayed.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (jwtmw.TokenPair, error) {
	claims, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return jwtmw.TokenPair{}, domain.ErrInvalidRefreshToken
	}

	revoked, err := u.blacklist.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return jwtmw.TokenPair{}, fmt.Errorf("failed to check blacklist: %w", err)
	}
	if revoked {
		return jwtmw.TokenPair{}, domain.ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return jwtmw.TokenPair{}, domain.ErrInvalidRefreshToken
		}
		return jwtmw.TokenPair{}, err
	}

	// Rotation: invalidate the used token before handing out the new pair.
	if err := u.blacklist.Revoke(ctx, &entity.RevokedToken{
		JTI:       claims.JTI,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt,
		RevokedAt: time.Now(),
	}); err != nil {
		return jwtmw.TokenPair{}, fmt.Errorf("failed to revoke token: %w", err)
	}

	pair, err := u.tokens.GeneratePair(user.ID, user.Username)
	if err != nil {
		return jwtmw.TokenPair{}, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return pair, nil
}

// Logout blacklists the presented refresh token. Malformed and already
// revoked tokens fail the same way.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return domain.ErrInvalidRefreshToken
	}

	revoked, err := u.blacklist.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return fmt.Errorf("failed to check blacklist: %w", err)
	}
	if revoked {
		return domain.ErrInvalidRefreshToken
	}

	return u.blacklist.Revoke(ctx, &entity.RevokedToken{
		JTI:       claims.JTI,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt,
		RevokedAt: time.Now(),
	})
}
