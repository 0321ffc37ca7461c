package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/utils"
	"github.com/google/uuid"
)

// authService orchestrates the session lifecycle: register, login, logout,
// refresh and password reset. It owns the rotation contract: every successful
// login or refresh persists the new refresh token hash before either token is
// returned to the caller.
type authService struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	uploader     portssvc.UploaderSvc
	googleOAuth  portssvc.GoogleOAuthSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	uploader portssvc.UploaderSvc,
	googleOAuth portssvc.GoogleOAuthSvcFacade,
) portssvc.AuthSvcFacade {
	return &authService{
		userService:  userService,
		tokenService: tokenService,
		uploader:     uploader,
		googleOAuth:  googleOAuth,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register validates the form fields, uploads the avatar (required) and cover
// image (optional), creates the user and returns the public view from a
// post-write re-read.
func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest, avatarPath, coverImagePath string) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	password := strings.TrimSpace(req.Password)
	if fullName == "" || email == "" || username == "" || password == "" {
		return nil, fmt.Errorf("all fields are required: %w", apperrors.ErrValidation)
	}

	existing, err := s.userService.GetUserByIdentifier(ctx, username, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username or email already registered: %w", apperrors.ErrDuplicate)
	}

	if avatarPath == "" {
		return nil, fmt.Errorf("avatar file is required: %w", apperrors.ErrValidation)
	}
	avatarURL, err := s.uploader.Upload(ctx, avatarPath)
	if err != nil {
		return nil, fmt.Errorf("avatar upload: %w", err)
	}

	// Cover image is optional; its absence yields an empty string, not an error.
	coverURL := ""
	if coverImagePath != "" {
		coverURL, err = s.uploader.Upload(ctx, coverImagePath)
		if err != nil {
			return nil, fmt.Errorf("cover image upload: %w", err)
		}
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.userService.CreateUser(ctx, user)
}

// Login verifies the identifier/password pair and rotates in a fresh token pair.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *portssvc.TokenPair, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" && email == "" {
		return nil, nil, fmt.Errorf("username or email is required: %w", apperrors.ErrValidation)
	}

	user, err := s.userService.GetUserByIdentifier(ctx, username, email)
	if err != nil {
		return nil, nil, err
	}
	if !s.userService.VerifyPassword(user, req.Password) {
		return nil, nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// LoginWithGoogle exchanges the authorization code, resolves the verified email
// to a user (creating one on first sign-in) and issues the usual rotated pair.
func (s *authService) LoginWithGoogle(ctx context.Context, code string) (*domain.User, *portssvc.TokenPair, error) {
	token, err := s.googleOAuth.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}
	info, err := s.googleOAuth.GetUserInfo(ctx, token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}
	if !info.VerifiedEmail || info.Email == "" {
		return nil, nil, fmt.Errorf("google account email not verified: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.userService.GetUserByEmail(ctx, info.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.createGoogleUser(ctx, info)
	}
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// createGoogleUser provisions a local account for a first-time Google sign-in.
// The password slot gets an unguessable random value; such accounts only ever
// authenticate through Google.
func (s *authService) createGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	suffix, err := utils.GenerateSecureRandomString(4)
	if err != nil {
		return nil, fmt.Errorf("failed to generate username suffix: %w", err)
	}
	localPart := strings.ToLower(strings.SplitN(info.Email, "@", 2)[0])

	randomSecret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder password: %w", err)
	}
	passwordHash, err := utils.HashPassword(randomSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     localPart + "_" + suffix,
		Email:        info.Email,
		FullName:     info.Name,
		PasswordHash: passwordHash,
		Avatar:       info.Picture,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.userService.CreateUser(ctx, user)
}

// Logout clears the stored refresh token unconditionally. Calling it twice is
// not an error.
func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.userService.ClearRefreshToken(ctx, userID)
}

// Refresh validates the presented token, confirms it matches the stored one and
// rotates via a single conditional update, so two racing refresh calls cannot
// both win.
func (s *authService) Refresh(ctx context.Context, presentedToken string) (*domain.User, *portssvc.TokenPair, error) {
	if presentedToken == "" {
		return nil, nil, fmt.Errorf("refresh token is required: %w", apperrors.ErrUnauthorized)
	}

	userID, err := s.tokenService.ValidateRefreshToken(ctx, presentedToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("no such user: %w", apperrors.ErrUnauthorized)
		}
		return nil, nil, err
	}

	if user.RefreshTokenHash == "" {
		// Logged out since the token was issued.
		return nil, nil, fmt.Errorf("no active session: %w", apperrors.ErrUnauthorized)
	}
	if user.RefreshTokenExpiryTime != nil && time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, nil, fmt.Errorf("stored refresh token expired: %w", apperrors.ErrUnauthorized)
	}
	presentedHash := utils.HashToken(presentedToken)
	if presentedHash != user.RefreshTokenHash {
		// Cryptographically valid but not the current token: possible replay.
		return nil, nil, apperrors.ErrTokenReused
	}

	accessToken, accessExpiry, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
	}
	refreshToken, refreshExpiry, err := s.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
	}

	// Compare-and-swap against the hash read above. A concurrent rotation for the
	// same user makes this fail rather than silently double-issuing.
	if err := s.userService.RotateRefreshToken(ctx, userID, presentedHash, utils.HashToken(refreshToken), refreshExpiry); err != nil {
		return nil, nil, err
	}

	return user, &portssvc.TokenPair{
		AccessToken:        accessToken,
		AccessTokenExpiry:  accessExpiry,
		RefreshToken:       refreshToken,
		RefreshTokenExpiry: refreshExpiry,
	}, nil
}

// ChangePassword replaces the password after verifying the old one. The update
// touches only the password hash column.
func (s *authService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("new password must not be blank: %w", apperrors.ErrValidation)
	}

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.userService.VerifyPassword(user, oldPassword) {
		return fmt.Errorf("old password is incorrect: %w", apperrors.ErrUnauthorized)
	}
	return s.userService.SetPassword(ctx, userID, newPassword)
}

// issueTokenPair generates both tokens and persists the refresh token hash
// before returning either token. Used by login flows, where the new token
// unconditionally replaces whatever was stored.
func (s *authService) issueTokenPair(ctx context.Context, user *domain.User) (*portssvc.TokenPair, error) {
	accessToken, accessExpiry, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
	}
	refreshToken, refreshExpiry, err := s.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
	}

	if err := s.userService.UpdateRefreshToken(ctx, user.UserID, utils.HashToken(refreshToken), refreshExpiry); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &portssvc.TokenPair{
		AccessToken:        accessToken,
		AccessTokenExpiry:  accessExpiry,
		RefreshToken:       refreshToken,
		RefreshTokenExpiry: refreshExpiry,
	}, nil
}
