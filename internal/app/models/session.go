package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an independent taxonomy axis, typically an academic year or
// term label such as "2023-24".
type Session struct {
	ID        int64     `db:"id" json:"id"`
	UID       uuid.UUID `db:"uid" json:"uid"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
