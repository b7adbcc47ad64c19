package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential store record. IsStaff gates catalog writes.
type User struct {
	ID           int64     `db:"id" json:"id"`
	UID          uuid.UUID `db:"uid" json:"uid"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsStaff      bool      `db:"is_staff" json:"isStaff"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
