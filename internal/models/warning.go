package models

import (
	"time"

	"github.com/google/uuid"
)

// Warning is an admin-issued notice attached to a user. Only the targeted
// user may dismiss it.
type Warning struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	AdminID     uuid.UUID `db:"admin_id" json:"adminId"`
	Reason      string    `db:"reason" json:"reason"`
	IsDismissed bool      `db:"is_dismissed" json:"isDismissed"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
