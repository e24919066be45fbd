package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system.
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	DisplayName    string    `db:"display_name" json:"displayName"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	IsAdmin        bool      `db:"is_admin" json:"isAdmin"`
	IsLocked       bool      `db:"is_locked" json:"isLocked"`
	ProfilePicture *string   `db:"profile_picture" json:"profilePicture,omitempty"`
	Bio            *string   `db:"bio" json:"bio,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// ProfileUpdate enumerates the user fields a user may change on their own
// account. Nil pointers leave the corresponding column untouched.
type ProfileUpdate struct {
	DisplayName    *string
	Bio            *string
	ProfilePicture *string
}

// Caller identifies the authenticated principal of a request.
type Caller struct {
	ID      uuid.UUID
	IsAdmin bool
}
