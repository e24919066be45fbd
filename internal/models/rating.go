package models

import "github.com/google/uuid"

// Rating values are restricted to this inclusive range.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating is one user's 1-5 score for a deck. At most one rating exists per
// (deck, user) pair; re-rating overwrites in place.
type Rating struct {
	DeckID uuid.UUID `db:"deck_id" json:"deckId"`
	UserID uuid.UUID `db:"user_id" json:"userId"`
	Value  int       `db:"value" json:"value"`
}
