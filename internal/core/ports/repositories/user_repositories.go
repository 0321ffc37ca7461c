package repositories

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users, including the
// refresh-token slot that backs session rotation.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate when the
	// username or email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID. Returns apperrors.ErrNotFound if absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by lowercased username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves the user matching either identifier.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// UpdateUser replaces the mutable profile columns (full name, email, avatar,
	// cover image) of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces only the password hash. No other column is touched.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// UpdateRefreshToken unconditionally stores a new refresh token hash and expiry.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// RotateRefreshToken replaces the stored hash only if it still equals
	// expectedHash (single conditional update). Returns apperrors.ErrTokenReused
	// when the stored value no longer matches.
	RotateRefreshToken(ctx context.Context, userID string, expectedHash string, newHash string, newExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token entirely (SQL NULL).
	// Idempotent: clearing an already-clear slot is not an error.
	ClearRefreshToken(ctx context.Context, userID string) error
}
