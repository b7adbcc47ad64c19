package models

import (
	"time"

	"github.com/google/uuid"
)

// Subject belongs to at most one course. CourseID is nullable; a subject
// may exist unattached.
type Subject struct {
	ID        int64     `db:"id" json:"id"`
	UID       uuid.UUID `db:"uid" json:"uid"`
	Name      string    `db:"name" json:"name"`
	CourseID  *int64    `db:"course_id" json:"courseId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	// Relation (populated when needed)
	Course *Course `json:"course,omitempty"`
}
