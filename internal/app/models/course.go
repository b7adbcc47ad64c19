package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is the root of the classification taxonomy.
// Deleting a course cascades to its subjects and resources.
type Course struct {
	ID        int64     `db:"id" json:"id"`
	UID       uuid.UUID `db:"uid" json:"uid"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
