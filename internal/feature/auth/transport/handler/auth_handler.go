// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cropscience_backend/internal/feature/auth/domain"
	"cropscience_backend/internal/feature/auth/domain/entity"
	"cropscience_backend/internal/feature/auth/transport/http/dto"
	jwtmw "cropscience_backend/internal/platform/jwt"
)

// AuthUsecase defines the usecase interface for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error)
	Login(ctx context.Context, username, password string) (jwtmw.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (jwtmw.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
// Returns 201 with user info and a token pair, 400 on validation failures
// (bad fields, password mismatch, duplicate username), and 500 on
// infrastructure errors.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, pair, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Password2)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			slog.Warn("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		case errors.Is(err, domain.ErrUsernameAlreadyExists):
			slog.Warn("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "a user with that username already exists"})
		default:
			slog.Error("register failed", "error", err, "username", req.Username)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{
		User:   dto.UserInfo{ID: user.ID, Username: user.Username, Email: user.Email},
		Tokens: dto.TokenPair{Access: pair.Access, Refresh: pair.Refresh},
	})
}

// Login handles POST /auth/login.
// Returns 200 with a token pair, or 401 with a generic message so usernames
// cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenPair{Access: pair.Access, Refresh: pair.Refresh})
}

// Refresh handles POST /auth/token/refresh.
// Exchanges a valid refresh token for a new pair; the used token is rotated
// out and cannot be presented again. Failures are 401.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenPair{Access: pair.Access, Refresh: pair.Refresh})
}

// Logout handles POST /auth/logout (authenticated).
// Blacklists the refresh token from the body and returns 205. A missing
// token and an invalid or already blacklisted one are both 400.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.Refresh); err != nil {
		slog.Warn("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or already blacklisted token"})
		return
	}

	slog.Info("user logged out", "remote_addr", c.ClientIP())
	c.Status(http.StatusResetContent)
}
