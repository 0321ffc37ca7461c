package domain

import "time"

// User represents a registered user of the platform.
// PasswordHash and the refresh token fields never leave the server; they are
// excluded from every outward projection.
type User struct {
	UserID     string `json:"userID"`
	Username   string `json:"username"` // unique, stored lowercase
	Email      string `json:"email"`    // unique
	FullName   string `json:"fullName"`
	Avatar     string `json:"avatar"`               // required media URL
	CoverImage string `json:"coverImage,omitempty"` // optional media URL

	PasswordHash string `json:"-"`

	// RefreshTokenHash holds the SHA-256 hash of the single currently valid
	// refresh token, or empty when no session is active.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GoogleUserInfo holds the subset of the Google userinfo payload the backend consumes.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
