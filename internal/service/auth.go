package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

// AuthService handles registration, login and token lifecycle.
//
//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
type AuthService interface {
	// Register creates a new account. Username and email must be unique.
	Register(ctx context.Context, username, displayName, email, password string) (*models.User, error)

	// Login authenticates a user and returns a fresh token pair. Locked
	// accounts fail with ErrInvalidCredentials so a prober cannot tell a
	// lock apart from a typo.
	Login(ctx context.Context, username, password string) (*models.TokenDetails, error)

	// Logout revokes the given token pair. Revoking already-gone tokens is
	// not an error.
	Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) error

	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error)

	// VerifyAccessToken parses an access token, validates its signature and
	// expiry and checks it has not been revoked.
	VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error)
}
