package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

// CardRepository defines persistence operations for cards. Create and
// Delete maintain the parent deck's card_count in the same transaction as
// the row change.
//
//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
type CardRepository interface {
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]models.Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error)

	// Create inserts the card and increments the deck's card_count.
	// Returns ErrDeckNotFound if the deck does not exist.
	Create(ctx context.Context, card *models.Card) error

	// Update applies the non-nil fields of upd and returns the updated row.
	Update(ctx context.Context, id uuid.UUID, upd models.CardUpdate) (*models.Card, error)

	// Delete removes the card and decrements the deck's card_count.
	Delete(ctx context.Context, id uuid.UUID) error
}
