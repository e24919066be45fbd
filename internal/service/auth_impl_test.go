package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/config"
	"github.com/huycopper/flashmind/internal/interfaces/mocks"
	"github.com/huycopper/flashmind/internal/models"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "unit-test-secret",
		PasswordPepper:  "unit-test-pepper",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	password := "mysecretpassword"
	pepper := "test-pepper"

	hashed, err := hashPassword(password, pepper)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, password, hashed)

	assert.True(t, checkPasswordHash(password, hashed, pepper))
	assert.False(t, checkPasswordHash("wrongpassword", hashed, pepper))
	assert.False(t, checkPasswordHash(password, hashed, "another-pepper"))
	assert.False(t, checkPasswordHash(password, "not-a-bcrypt-hash", pepper))
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		tokenRepo := mocks.NewMockTokenRepository(t)
		svc := NewAuthService(userRepo, tokenRepo, testAuthConfig(), zap.NewNop())

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com" && u.PasswordHash != ""
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = uuid.New()
		}).Return(nil).Once()

		user, err := svc.Register(ctx, "alice", "Alice", "Alice@Example.com ", "supersecret1")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "Alice", user.DisplayName)
		assert.Equal(t, "alice@example.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("DisplayNameDefaultsToUsername", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		tokenRepo := mocks.NewMockTokenRepository(t)
		svc := NewAuthService(userRepo, tokenRepo, testAuthConfig(), zap.NewNop())

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.DisplayName == "bob"
		})).Return(nil).Once()

		_, err := svc.Register(ctx, "bob", "  ", "bob@example.com", "supersecret1")
		require.NoError(t, err)
	})

	t.Run("ShortUsername", func(t *testing.T) {
		svc := NewAuthService(mocks.NewMockUserRepository(t), mocks.NewMockTokenRepository(t), testAuthConfig(), zap.NewNop())
		_, err := svc.Register(ctx, "ab", "", "a@example.com", "supersecret1")
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := NewAuthService(mocks.NewMockUserRepository(t), mocks.NewMockTokenRepository(t), testAuthConfig(), zap.NewNop())
		_, err := svc.Register(ctx, "alice", "", "a@example.com", "short")
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		svc := NewAuthService(mocks.NewMockUserRepository(t), mocks.NewMockTokenRepository(t), testAuthConfig(), zap.NewNop())
		_, err := svc.Register(ctx, "alice", "", "not-an-email", "supersecret1")
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := NewAuthService(userRepo, mocks.NewMockTokenRepository(t), testAuthConfig(), zap.NewNop())

		userRepo.On("Create", ctx, mock.Anything).Return(models.ErrUserAlreadyExists).Once()

		_, err := svc.Register(ctx, "alice", "", "alice@example.com", "supersecret1")
		assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := testAuthConfig()

	password := "supersecret1"
	hash, err := hashPassword(password, cfg.PasswordPepper)
	require.NoError(t, err)

	baseUser := func() *models.User {
		return &models.User{
			ID:           uuid.New(),
			Username:     "alice",
			DisplayName:  "Alice",
			Email:        "alice@example.com",
			PasswordHash: hash,
		}
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		tokenRepo := mocks.NewMockTokenRepository(t)
		svc := NewAuthService(userRepo, tokenRepo, cfg, zap.NewNop())

		user := baseUser()
		userRepo.On("GetByUsername", ctx, "alice").Return(user, nil).Once()
		tokenRepo.On("SetToken", ctx, user.ID, mock.AnythingOfType("*models.TokenDetails")).Return(nil).Once()

		td, err := svc.Login(ctx, "alice", password)
		require.NoError(t, err)
		assert.NotEmpty(t, td.AccessToken)
		assert.NotEmpty(t, td.RefreshToken)
		assert.NotEqual(t, td.AccessUUID, td.RefreshUUID)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := NewAuthService(userRepo, mocks.NewMockTokenRepository(t), cfg, zap.NewNop())

		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, models.ErrUserNotFound).Once()

		_, err := svc.Login(ctx, "ghost", password)
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := NewAuthService(userRepo, mocks.NewMockTokenRepository(t), cfg, zap.NewNop())

		userRepo.On("GetByUsername", ctx, "alice").Return(baseUser(), nil).Once()

		_, err := svc.Login(ctx, "alice", "wrongpassword")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("LockedUserGetsGenericError", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		tokenRepo := mocks.NewMockTokenRepository(t)
		svc := NewAuthService(userRepo, tokenRepo, cfg, zap.NewNop())

		locked := baseUser()
		locked.IsLocked = true
		userRepo.On("GetByUsername", ctx, "alice").Return(locked, nil).Once()

		_, err := svc.Login(ctx, "alice", password)
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
		tokenRepo.AssertNotCalled(t, "SetToken", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_VerifyAccessToken(t *testing.T) {
	ctx := context.Background()
	cfg := testAuthConfig()

	user := &models.User{ID: uuid.New(), Username: "alice", IsAdmin: true}

	issue := func(t *testing.T, svc AuthService, userRepo *mocks.MockUserRepository, tokenRepo *mocks.MockTokenRepository) *models.TokenDetails {
		t.Helper()
		userRepo.On("GetByUsername", ctx, "alice").Return(user, nil).Once()
		tokenRepo.On("SetToken", ctx, user.ID, mock.Anything).Return(nil).Once()
		td, err := svc.Login(ctx, "alice", "irrelevant")
		require.NoError(t, err)
		return td
	}

	t.Run("ValidToken", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		tokenRepo := mocks.NewMockTokenRepository(t)
		svc := NewAuthService(userRepo, tokenRepo, cfg, zap.NewNop())

		hash, err := hashPassword("irrelevant", cfg.PasswordPepper)
		require.NoError(t, err)
		user.PasswordHash = hash

		td := issue(t, svc, userRepo, tokenRepo)

		tokenRepo.On("GetUserIDByAccessUUID", ctx, td.AccessUUID).Return(user.ID, nil).Once()

		claims, err := svc.VerifyAccessToken(ctx, td.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.True(t, claims.IsAdmin)
		assert.Equal(t, td.AccessUUID, claims.ID)
	})

	t.Run("RevokedToken", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		tokenRepo := mocks.NewMockTokenRepository(t)
		svc := NewAuthService(userRepo, tokenRepo, cfg, zap.NewNop())

		hash, err := hashPassword("irrelevant", cfg.PasswordPepper)
		require.NoError(t, err)
		user.PasswordHash = hash

		td := issue(t, svc, userRepo, tokenRepo)

		tokenRepo.On("GetUserIDByAccessUUID", ctx, td.AccessUUID).Return(uuid.Nil, models.ErrTokenNotFound).Once()

		_, err = svc.VerifyAccessToken(ctx, td.AccessToken)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		svc := NewAuthService(mocks.NewMockUserRepository(t), mocks.NewMockTokenRepository(t), cfg, zap.NewNop())
		_, err := svc.VerifyAccessToken(ctx, "garbage")
		assert.ErrorIs(t, err, models.ErrTokenMalformed)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("DeletesBothTokens", func(t *testing.T) {
		tokenRepo := mocks.NewMockTokenRepository(t)
		svc := NewAuthService(mocks.NewMockUserRepository(t), tokenRepo, testAuthConfig(), zap.NewNop())

		tokenRepo.On("DeleteTokens", ctx, userID, "access-uuid", "refresh-uuid").Return(int64(2), nil).Once()

		err := svc.Logout(ctx, userID, "access-uuid", "refresh-uuid")
		assert.NoError(t, err)
	})

	t.Run("AlreadyGoneIsNotAnError", func(t *testing.T) {
		tokenRepo := mocks.NewMockTokenRepository(t)
		svc := NewAuthService(mocks.NewMockUserRepository(t), tokenRepo, testAuthConfig(), zap.NewNop())

		tokenRepo.On("DeleteTokens", ctx, userID, "access-uuid", "refresh-uuid").Return(int64(0), nil).Once()

		err := svc.Logout(ctx, userID, "access-uuid", "refresh-uuid")
		assert.NoError(t, err)
	})
}
