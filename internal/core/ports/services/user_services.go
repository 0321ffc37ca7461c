package services

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username (matched lowercase).
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByIdentifier retrieves the user matching either username or email.
	GetUserByIdentifier(ctx context.Context, username, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser persists a new user and re-reads it by ID as a post-write
	// consistency check. The returned user carries no credential fields.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateAccountDetails replaces fullName and/or email.
	UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error)

	// UpdateAvatar replaces the avatar URL.
	UpdateAvatar(ctx context.Context, userID string, avatarURL string) (*domain.User, error)

	// UpdateCoverImage replaces the cover image URL.
	UpdateCoverImage(ctx context.Context, userID string, coverURL string) (*domain.User, error)
}

// CredentialSvc owns the per-user password hash and refresh-token slot.
type CredentialSvc interface {
	// VerifyPassword compares a candidate against the stored hash. Never errors
	// on mismatch; returns false.
	VerifyPassword(user *domain.User, candidate string) bool

	// SetPassword hashes and replaces the stored password hash via a partial update.
	SetPassword(ctx context.Context, userID string, newPassword string) error

	// UpdateRefreshToken persists a new refresh token hash unconditionally.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// RotateRefreshToken swaps the stored hash only if it still equals expectedHash.
	RotateRefreshToken(ctx context.Context, userID string, expectedHash, newHash string, newExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token. Idempotent.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	CredentialSvc
}
