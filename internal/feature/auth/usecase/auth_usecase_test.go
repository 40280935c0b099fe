package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cropscience_backend/internal/feature/auth/domain"
	"cropscience_backend/internal/feature/auth/domain/entity"
	jwtmw "cropscience_backend/internal/platform/jwt"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// mockTokenGenerator is a mock implementation of the TokenGenerator interface.
type mockTokenGenerator struct {
	GeneratePairFunc func(userID uint, username string) (jwtmw.TokenPair, error)
	ParseRefreshFunc func(token string) (*jwtmw.RefreshClaims, error)
}

func (m *mockTokenGenerator) GeneratePair(userID uint, username string) (jwtmw.TokenPair, error) {
	if m.GeneratePairFunc != nil {
		return m.GeneratePairFunc(userID, username)
	}
	return jwtmw.TokenPair{Access: "mock-access", Refresh: "mock-refresh"}, nil
}

func (m *mockTokenGenerator) ParseRefresh(token string) (*jwtmw.RefreshClaims, error) {
	if m.ParseRefreshFunc != nil {
		return m.ParseRefreshFunc(token)
	}
	return nil, errors.New("invalid token")
}

// mockTokenBlacklist is a mock implementation of the TokenBlacklist interface.
type mockTokenBlacklist struct {
	RevokeFunc    func(ctx context.Context, token *entity.RevokedToken) error
	IsRevokedFunc func(ctx context.Context, jti string) (bool, error)
}

func (m *mockTokenBlacklist) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return nil
}

func (m *mockTokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, jti)
	}
	return false, nil
}

func newTestUsecase(users *mockUserRepository, tokens *mockTokenGenerator, blacklist *mockTokenBlacklist) *authUsecase {
	if users == nil {
		users = &mockUserRepository{}
	}
	if tokens == nil {
		tokens = &mockTokenGenerator{}
	}
	if blacklist == nil {
		blacklist = &mockTokenBlacklist{}
	}
	return NewAuthUsecase(users, tokens, blacklist)
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration hashes the password and issues tokens", func(t *testing.T) {
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				assert.NotEqual(t, "password123", user.Password, "password is not hashed")
				assert.NoError(t,
					bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")),
					"stored hash does not match the password")
				user.ID = 42
				return nil
			},
		}
		uc := newTestUsecase(users, nil, nil)

		user, pair, err := uc.Register(context.Background(), "alice", "alice@example.com", "password123", "password123")

		require.NoError(t, err)
		assert.Equal(t, uint(42), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "mock-access", pair.Access)
		assert.Equal(t, "mock-refresh", pair.Refresh)
	})

	t.Run("password mismatch never creates a user", func(t *testing.T) {
		created := false
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = true
				return nil
			},
		}
		uc := newTestUsecase(users, nil, nil)

		_, _, err := uc.Register(context.Background(), "alice", "", "password123", "different123")

		assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
		assert.False(t, created, "user must not be created on mismatch")
	})

	t.Run("short password is rejected", func(t *testing.T) {
		uc := newTestUsecase(nil, nil, nil)

		_, _, err := uc.Register(context.Background(), "alice", "", "short", "short")

		assert.Error(t, err)
	})

	t.Run("duplicate username error is propagated", func(t *testing.T) {
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return domain.ErrUsernameAlreadyExists
			},
		}
		uc := newTestUsecase(users, nil, nil)

		_, _, err := uc.Register(context.Background(), "alice", "", "password123", "password123")

		assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &entity.User{ID: 7, Username: "alice", Password: string(hashed)}

	t.Run("successful login returns a token pair", func(t *testing.T) {
		users := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return storedUser, nil
			},
		}
		tokens := &mockTokenGenerator{
			GeneratePairFunc: func(userID uint, username string) (jwtmw.TokenPair, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, "alice", username)
				return jwtmw.TokenPair{Access: "a", Refresh: "r"}, nil
			},
		}
		uc := newTestUsecase(users, tokens, nil)

		pair, err := uc.Login(context.Background(), "alice", "password123")

		require.NoError(t, err)
		assert.Equal(t, "a", pair.Access)
	})

	t.Run("wrong password fails with generic error", func(t *testing.T) {
		users := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return storedUser, nil
			},
		}
		uc := newTestUsecase(users, nil, nil)

		_, err := uc.Login(context.Background(), "alice", "wrongpassword")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user fails with the same generic error", func(t *testing.T) {
		uc := newTestUsecase(nil, nil, nil)

		_, err := uc.Login(context.Background(), "nobody", "password123")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthUsecase_Refresh(t *testing.T) {
	claims := &jwtmw.RefreshClaims{UserID: 7, JTI: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}
	user := &entity.User{ID: 7, Username: "alice"}

	t.Run("valid refresh rotates the token before issuing a new pair", func(t *testing.T) {
		var revokedJTI string
		rotated := false
		tokens := &mockTokenGenerator{
			ParseRefreshFunc: func(token string) (*jwtmw.RefreshClaims, error) { return claims, nil },
			GeneratePairFunc: func(userID uint, username string) (jwtmw.TokenPair, error) {
				assert.True(t, rotated, "old token must be revoked before the new pair is issued")
				return jwtmw.TokenPair{Access: "new-a", Refresh: "new-r"}, nil
			},
		}
		blacklist := &mockTokenBlacklist{
			RevokeFunc: func(ctx context.Context, token *entity.RevokedToken) error {
				revokedJTI = token.JTI
				rotated = true
				return nil
			},
		}
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) { return user, nil },
		}
		uc := newTestUsecase(users, tokens, blacklist)

		pair, err := uc.Refresh(context.Background(), "refresh-token")

		require.NoError(t, err)
		assert.Equal(t, "jti-1", revokedJTI)
		assert.Equal(t, "new-a", pair.Access)
	})

	t.Run("blacklisted token is rejected", func(t *testing.T) {
		tokens := &mockTokenGenerator{
			ParseRefreshFunc: func(token string) (*jwtmw.RefreshClaims, error) { return claims, nil },
		}
		blacklist := &mockTokenBlacklist{
			IsRevokedFunc: func(ctx context.Context, jti string) (bool, error) { return true, nil },
		}
		uc := newTestUsecase(nil, tokens, blacklist)

		_, err := uc.Refresh(context.Background(), "rotated-token")

		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		uc := newTestUsecase(nil, nil, nil)

		_, err := uc.Refresh(context.Background(), "garbage")

		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})

	t.Run("token of a deleted user is rejected", func(t *testing.T) {
		tokens := &mockTokenGenerator{
			ParseRefreshFunc: func(token string) (*jwtmw.RefreshClaims, error) { return claims, nil },
		}
		uc := newTestUsecase(nil, tokens, nil)

		_, err := uc.Refresh(context.Background(), "refresh-token")

		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	claims := &jwtmw.RefreshClaims{UserID: 7, JTI: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("successful logout blacklists the token", func(t *testing.T) {
		var revoked *entity.RevokedToken
		tokens := &mockTokenGenerator{
			ParseRefreshFunc: func(token string) (*jwtmw.RefreshClaims, error) { return claims, nil },
		}
		blacklist := &mockTokenBlacklist{
			RevokeFunc: func(ctx context.Context, token *entity.RevokedToken) error {
				revoked = token
				return nil
			},
		}
		uc := newTestUsecase(nil, tokens, blacklist)

		err := uc.Logout(context.Background(), "refresh-token")

		require.NoError(t, err)
		require.NotNil(t, revoked)
		assert.Equal(t, "jti-1", revoked.JTI)
		assert.Equal(t, uint(7), revoked.UserID)
	})

	t.Run("already blacklisted token fails", func(t *testing.T) {
		tokens := &mockTokenGenerator{
			ParseRefreshFunc: func(token string) (*jwtmw.RefreshClaims, error) { return claims, nil },
		}
		blacklist := &mockTokenBlacklist{
			IsRevokedFunc: func(ctx context.Context, jti string) (bool, error) { return true, nil },
		}
		uc := newTestUsecase(nil, tokens, blacklist)

		err := uc.Logout(context.Background(), "refresh-token")

		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})

	t.Run("malformed token fails", func(t *testing.T) {
		uc := newTestUsecase(nil, nil, nil)

		err := uc.Logout(context.Background(), "garbage")

		assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
	})
}
