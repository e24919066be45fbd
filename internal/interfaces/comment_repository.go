package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

// CommentRepository defines persistence operations for deck comments.
//
//go:generate mockery --name CommentRepository --output ./mocks --outpkg mocks --case=underscore
type CommentRepository interface {
	// ListByDeck returns a deck's comments, newest first. Hidden comments
	// are included only when includeHidden is set (moderation reads).
	ListByDeck(ctx context.Context, deckID uuid.UUID, includeHidden bool) ([]models.Comment, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)

	// Create inserts the comment and fills in the generated ID and timestamp.
	// Returns ErrDeckNotFound if the deck does not exist.
	Create(ctx context.Context, comment *models.Comment) error

	// SetHidden flips the admin moderation flag.
	SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error

	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateUserName fans a display-name change out to the denormalized
	// user_name column of every comment the user authored.
	UpdateUserName(ctx context.Context, userID uuid.UUID, userName string) error
}
