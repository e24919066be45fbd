package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// RatingRepository defines persistence operations for deck ratings.
//
//go:generate mockery --name RatingRepository --output ./mocks --outpkg mocks --case=underscore
type RatingRepository interface {
	// Rate upserts the (deck, user) rating and recomputes the deck's
	// average_rating (one decimal) and rating_count inside a single
	// transaction, so concurrent raters never publish a stale aggregate.
	// Returns ErrDeckNotFound or ErrUserNotFound on dangling references.
	Rate(ctx context.Context, deckID, userID uuid.UUID, value int) error

	// GetValue returns the caller's rating for a deck, or ErrNotFound when
	// the user has not rated it.
	GetValue(ctx context.Context, deckID, userID uuid.UUID) (int, error)
}
