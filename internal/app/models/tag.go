package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a free-form label resolved by exact name match. Name uniqueness is
// enforced at the store level; resolve is get-or-create.
type Tag struct {
	ID        int64     `db:"id" json:"id"`
	UID       uuid.UUID `db:"uid" json:"uid"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
