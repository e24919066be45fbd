package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

// UserRepository defines persistence operations for user accounts.
//
//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID and timestamps.
	// Returns ErrUserAlreadyExists or ErrEmailAlreadyExists on unique
	// constraint violations.
	Create(ctx context.Context, user *models.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users, newest first. Used by the moderation panel.
	List(ctx context.Context) ([]models.User, error)

	// SetLocked flips the moderation lock flag.
	SetLocked(ctx context.Context, id uuid.UUID, locked bool) error

	// UpdateProfile applies the non-nil fields of upd and returns the
	// updated row.
	UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error)
}
