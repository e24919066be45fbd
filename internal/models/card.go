package models

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single front/back study item belonging to a deck.
type Card struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DeckID    uuid.UUID `db:"deck_id" json:"deckId"`
	Front     string    `db:"front" json:"front"`
	Back      string    `db:"back" json:"back"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CardUpdate enumerates the card fields an owner may change.
type CardUpdate struct {
	Front *string
	Back  *string
}
