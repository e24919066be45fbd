package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user remark attached to a deck. UserName is denormalized for
// display and kept in sync when the author renames themselves.
type Comment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	DeckID          uuid.UUID `db:"deck_id" json:"deckId"`
	UserID          uuid.UUID `db:"user_id" json:"userId"`
	UserName        string    `db:"user_name" json:"userName"`
	Content         string    `db:"content" json:"content"`
	IsHiddenByAdmin bool      `db:"is_hidden_by_admin" json:"isHiddenByAdmin"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}
