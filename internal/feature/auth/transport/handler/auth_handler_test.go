package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cropscience_backend/internal/feature/auth/domain"
	"cropscience_backend/internal/feature/auth/domain/entity"
	jwtmw "cropscience_backend/internal/platform/jwt"
)

// mockAuthUsecase is a configurable stub for the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error)
	LoginFunc    func(ctx context.Context, username, password string) (jwtmw.TokenPair, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (jwtmw.TokenPair, error)
	LogoutFunc   func(ctx context.Context, refreshToken string) error
}

func (m *mockAuthUsecase) Register(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error) {
	return m.RegisterFunc(ctx, username, email, password, password2)
}

func (m *mockAuthUsecase) Login(ctx context.Context, username, password string) (jwtmw.TokenPair, error) {
	return m.LoginFunc(ctx, username, password)
}

func (m *mockAuthUsecase) Refresh(ctx context.Context, refreshToken string) (jwtmw.TokenPair, error) {
	return m.RefreshFunc(ctx, refreshToken)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	return m.LogoutFunc(ctx, refreshToken)
}

// performRequest routes a single JSON request through a fresh router.
func performRequest(h *AuthHandler, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/token/refresh", h.Refresh)
	r.POST("/auth/logout", h.Logout)

	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	pair := jwtmw.TokenPair{Access: "access-token", Refresh: "refresh-token"}

	tests := []struct {
		name           string
		body           string
		registerFunc   func(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"username":"alice","email":"alice@example.com","password":"secret123","password2":"secret123"}`,
			registerFunc: func(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error) {
				return &entity.User{ID: 1, Username: username, Email: email}, pair, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"user":{"id":1,"username":"alice","email":"alice@example.com"},"tokens":{"access":"access-token","refresh":"refresh-token"}}`,
		},
		{
			name:           "missing username",
			body:           `{"password":"secret123","password2":"secret123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "password too short rejected by binding",
			body:           `{"username":"alice","password":"short","password2":"short"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name: "password mismatch",
			body: `{"username":"alice","password":"secret123","password2":"secret124"}`,
			registerFunc: func(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error) {
				return nil, jwtmw.TokenPair{}, domain.ErrPasswordMismatch
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"passwords do not match"}`,
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","password":"secret123","password2":"secret123"}`,
			registerFunc: func(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error) {
				return nil, jwtmw.TokenPair{}, domain.ErrUsernameAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"a user with that username already exists"}`,
		},
		{
			name: "infrastructure failure is a server error",
			body: `{"username":"alice","password":"secret123","password2":"secret123"}`,
			registerFunc: func(ctx context.Context, username, email, password, password2 string) (*entity.User, jwtmw.TokenPair, error) {
				return nil, jwtmw.TokenPair{}, assert.AnError
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.registerFunc})
			w := performRequest(h, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		loginFunc      func(ctx context.Context, username, password string) (jwtmw.TokenPair, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret123"}`,
			loginFunc: func(ctx context.Context, username, password string) (jwtmw.TokenPair, error) {
				return jwtmw.TokenPair{Access: "a", Refresh: "r"}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"access":"a","refresh":"r"}`,
		},
		{
			name: "bad credentials get a generic message",
			body: `{"username":"alice","password":"wrong-password"}`,
			loginFunc: func(ctx context.Context, username, password string) (jwtmw.TokenPair, error) {
				return jwtmw.TokenPair{}, domain.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid username or password"}`,
		},
		{
			name: "unknown user gets the same message",
			body: `{"username":"nobody","password":"secret123"}`,
			loginFunc: func(ctx context.Context, username, password string) (jwtmw.TokenPair, error) {
				return jwtmw.TokenPair{}, domain.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid username or password"}`,
		},
		{
			name:           "missing password",
			body:           `{"username":"alice"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.loginFunc})
			w := performRequest(h, http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		refreshFunc    func(ctx context.Context, refreshToken string) (jwtmw.TokenPair, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success rotates the pair",
			body: `{"refresh":"old-refresh"}`,
			refreshFunc: func(ctx context.Context, refreshToken string) (jwtmw.TokenPair, error) {
				return jwtmw.TokenPair{Access: "new-access", Refresh: "new-refresh"}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"access":"new-access","refresh":"new-refresh"}`,
		},
		{
			name: "blacklisted token rejected",
			body: `{"refresh":"rotated-out"}`,
			refreshFunc: func(ctx context.Context, refreshToken string) (jwtmw.TokenPair, error) {
				return jwtmw.TokenPair{}, domain.ErrInvalidRefreshToken
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid or expired refresh token"}`,
		},
		{
			name:           "missing token",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"refresh token is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{RefreshFunc: tt.refreshFunc})
			w := performRequest(h, http.MethodPost, "/auth/token/refresh", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("success returns 205 with empty body", func(t *testing.T) {
		var gotToken string
		h := NewAuthHandler(&mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, refreshToken string) error {
				gotToken = refreshToken
				return nil
			},
		})
		w := performRequest(h, http.MethodPost, "/auth/logout", `{"refresh":"some-refresh"}`)

		assert.Equal(t, http.StatusResetContent, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "some-refresh", gotToken)
	})

	t.Run("already blacklisted token", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, refreshToken string) error {
				return domain.ErrInvalidRefreshToken
			},
		})
		w := performRequest(h, http.MethodPost, "/auth/logout", `{"refresh":"stale"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid or already blacklisted token"}`, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})
		w := performRequest(h, http.MethodPost, "/auth/logout", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"refresh token is required"}`, w.Body.String())
	})
}
