package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthSvcFacade wraps the Google OAuth handshake used by the
// sign-in-with-Google flow.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a CSRF token for the OAuth redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for an OAuth token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the user's Google profile with the given token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken verifies an ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
