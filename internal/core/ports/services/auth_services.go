package services

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// TokenPair is the result of a successful login or refresh. The refresh token
// hash is already persisted before the pair is handed to the caller.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// TokenSvcFacade issues and validates the JWT token pair.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived access JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a long-lived refresh JWT for the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks signature and expiry of a refresh token and
	// returns the user ID claim. Returns apperrors.ErrUnauthorized (wrapped with
	// the parse failure detail) on any verification failure.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (string, error)
}

// AuthSvcFacade orchestrates the session lifecycle.
type AuthSvcFacade interface {
	// Register validates input, uploads the avatar (required) and cover image
	// (optional), creates the user and returns the public view.
	Register(ctx context.Context, req dto.RegisterUserRequest, avatarPath, coverImagePath string) (*domain.User, error)

	// Login verifies credentials, rotates the token pair and persists the new
	// refresh token before returning.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *TokenPair, error)

	// LoginWithGoogle exchanges a Google authorization code, finds or creates the
	// user by verified email, and issues the same rotated token pair.
	LoginWithGoogle(ctx context.Context, code string) (*domain.User, *TokenPair, error)

	// Logout clears the stored refresh token unconditionally. Idempotent.
	Logout(ctx context.Context, userID string) error

	// Refresh validates the presented refresh token, confirms it is the one
	// currently stored, rotates and returns a new pair.
	Refresh(ctx context.Context, presentedToken string) (*domain.User, *TokenPair, error)

	// ChangePassword verifies the old password and replaces it with the new one.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
