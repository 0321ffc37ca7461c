package models

import (
	"database/sql"
	"time"
)

// User mirrors a row of the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	FullName     string         `db:"full_name"`
	PasswordHash string         `db:"password_hash"`
	Avatar       string         `db:"avatar"`
	CoverImage   sql.NullString `db:"cover_image"`

	// Refresh Token Fields. NULL means no live session; clearing must set NULL,
	// never an empty string, so a cleared value can never compare equal.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
