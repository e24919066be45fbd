package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deck is a named collection of flashcards owned by one user.
// CardCount, AverageRating and RatingCount are denormalized aggregates,
// recomputed synchronously whenever cards or ratings change.
type Deck struct {
	ID              uuid.UUID `db:"id" json:"id"`
	OwnerID         uuid.UUID `db:"owner_id" json:"ownerId"`
	OwnerName       string    `db:"owner_name" json:"ownerName"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	Tags            []string  `db:"tags" json:"tags"`
	IsPublic        bool      `db:"is_public" json:"isPublic"`
	IsHiddenByAdmin bool      `db:"is_hidden_by_admin" json:"isHiddenByAdmin"`
	CardCount       int       `db:"card_count" json:"cardCount"`
	AverageRating   float64   `db:"average_rating" json:"averageRating"`
	RatingCount     int       `db:"rating_count" json:"ratingCount"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// DeckUpdate enumerates the deck fields an owner may change.
// Nil pointers leave the corresponding column untouched.
type DeckUpdate struct {
	Title       *string
	Description *string
	Tags        []string
	IsPublic    *bool
}

// DeckFilter describes a deck listing request.
//
// The rules compose in a fixed order: an OwnerID filter returns every deck
// of that owner including admin-hidden ones (the owner must see the
// removed-by-admin state), otherwise PublicOnly restricts to public decks,
// and admin-hidden decks are excluded unless IncludeHidden is set by an
// admin context. Search matches title, description or tags.
type DeckFilter struct {
	OwnerID       *uuid.UUID
	PublicOnly    bool
	IncludeHidden bool
	Search        string
}

// NormalizedSearch returns the trimmed search term; a blank term matches
// everything and is reported as "".
func (f DeckFilter) NormalizedSearch() string {
	return strings.TrimSpace(f.Search)
}
