// Package jwtmw provides JWT token generation and Gin authentication middleware.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cropscience_backend/internal/platform/config"
)

// Token type claim values. Access tokens authenticate requests; refresh
// tokens may only be exchanged for new pairs.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPair holds a freshly signed access and refresh token.
type TokenPair struct {
	Access  string
	Refresh string
}

// RefreshClaims are the verified claims of a refresh token.
type RefreshClaims struct {
	UserID    uint
	JTI       string
	ExpiresAt time.Time
}

// Generator defines the interface for JWT token generation and verification.
type Generator interface {
	// GeneratePair creates a signed access/refresh token pair for the given user.
	GeneratePair(userID uint, username string) (TokenPair, error)

	// ParseRefresh verifies a refresh token and returns its claims.
	// It fails on bad signatures, expiry, and non-refresh tokens.
	ParseRefresh(token string) (*RefreshClaims, error)
}

// generator implements the Generator interface.
type generator struct {
	secret          []byte
	accessLifetime  time.Duration
	refreshLifetime time.Duration
}

// NewGenerator creates a JWT generator from the signing configuration.
func NewGenerator(cfg config.JWTConfig) Generator {
	return &generator{
		secret:          []byte(cfg.Secret),
		accessLifetime:  cfg.AccessLifetime,
		refreshLifetime: cfg.RefreshLifetime,
	}
}

// GeneratePair creates a signed access/refresh token pair. The refresh token
// carries a uuid jti so individual tokens can be blacklisted.
func (g *generator) GeneratePair(userID uint, username string) (TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"typ":      TokenTypeAccess,
		"iat":      now.Unix(),
		"exp":      now.Add(g.accessLifetime).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(g.secret)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshClaims := jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
		"typ": TokenTypeRefresh,
		"iat": now.Unix(),
		"exp": now.Add(g.refreshLifetime).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(g.secret)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// ParseRefresh verifies signature, expiry and token type, and returns the
// claims needed for rotation and blacklisting.
func (g *generator) ParseRefresh(tokenStr string) (*RefreshClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid refresh token claims")
	}
	if typ, _ := claims["typ"].(string); typ != TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, fmt.Errorf("refresh token has no subject")
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return nil, fmt.Errorf("refresh token has no jti")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("refresh token has no expiry")
	}

	return &RefreshClaims{
		UserID:    uint(sub),
		JTI:       jti,
		ExpiresAt: exp.Time,
	}, nil
}
