package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

// tokenService issues and validates the JWT pair. Access tokens are stateless:
// no server-side revocation before expiry, which is the trade-off that keeps
// per-request auth checks cheap. Refresh tokens are additionally pinned to the
// hash stored on the user row.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new short-lived JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.AccessTokenExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new long-lived JWT refresh token, signed with
// its own secret.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	refreshToken, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return refreshToken, expiryTime, nil
}

// ValidateRefreshToken checks signature and expiry and returns the user ID
// claim. The parse failure detail is preserved in the wrapped error to help
// client-side debugging.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}
