package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

// TokenRepository tracks issued token UUIDs so that logout and account
// locks revoke sessions immediately.
//
//go:generate mockery --name TokenRepository --output ./mocks --outpkg mocks --case=underscore
type TokenRepository interface {
	// SetToken stores the access and refresh UUIDs of a token pair with
	// TTLs matching the token lifetimes.
	SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error

	// DeleteTokens removes the given token UUIDs. Empty UUIDs are skipped;
	// returns the number of keys actually removed.
	DeleteTokens(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) (int64, error)

	// DeleteTokensByUserID revokes every session of a user.
	DeleteTokensByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// GetUserIDByAccessUUID resolves an access token UUID to its user, or
	// ErrTokenNotFound when revoked or expired.
	GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error)

	// GetUserIDByRefreshUUID resolves a refresh token UUID to its user, or
	// ErrTokenNotFound when revoked or expired.
	GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error)
}
