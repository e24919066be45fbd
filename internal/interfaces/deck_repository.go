package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

// DeckRepository defines persistence operations for decks.
//
//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
type DeckRepository interface {
	// Create inserts a new deck and fills in the generated ID and timestamps.
	Create(ctx context.Context, deck *models.Deck) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Deck, error)

	// List returns decks matching the filter, newest first. Filter rule
	// precedence is documented on models.DeckFilter.
	List(ctx context.Context, filter models.DeckFilter) ([]models.Deck, error)

	// Update applies the non-nil fields of upd, bumps updated_at and returns
	// the updated row.
	Update(ctx context.Context, id uuid.UUID, upd models.DeckUpdate) (*models.Deck, error)

	// Delete removes the deck; cards, comments and ratings go with it.
	Delete(ctx context.Context, id uuid.UUID) error

	// Clone copies the source deck's metadata and all its cards into a new
	// private deck owned by ownerID, in one transaction. The new deck's
	// card_count equals the number of copied cards; aggregates start at zero.
	Clone(ctx context.Context, sourceID, ownerID uuid.UUID, ownerName, title string) (*models.Deck, error)

	// SetHidden flips the admin moderation flag.
	SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error

	// UpdateOwnerName fans a display-name change out to the denormalized
	// owner_name column of every deck the user owns.
	UpdateOwnerName(ctx context.Context, ownerID uuid.UUID, ownerName string) error
}
