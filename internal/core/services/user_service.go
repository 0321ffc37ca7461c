package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

// userService implements UserSvcFacade: user reads/writes plus the credential
// store (password hash and refresh-token slot).
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByIdentifier(ctx context.Context, username, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, strings.ToLower(username), email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by identifier: %w", err)
	}
	return user, nil
}

// CreateUser inserts the user and re-reads it by ID. The re-read guards against
// a write that reported success without persisting, and the returned copy never
// carries credential fields.
func (s *userService) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	created, err := s.userRepo.FindUserByID(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("user %s missing after create: %w", user.UserID, apperrors.ErrInternal)
	}
	created.PasswordHash = ""
	created.RefreshTokenHash = ""
	created.RefreshTokenExpiryTime = nil
	return created, nil
}

func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		if trimmed == "" {
			return nil, fmt.Errorf("fullName must not be blank: %w", apperrors.ErrValidation)
		}
		user.FullName = trimmed
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		if trimmed == "" {
			return nil, fmt.Errorf("email must not be blank: %w", apperrors.ErrValidation)
		}
		user.Email = trimmed
	}
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) UpdateAvatar(ctx context.Context, userID string, avatarURL string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Avatar = avatarURL
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID string, coverURL string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.CoverImage = coverURL
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

// VerifyPassword uses the slow bcrypt comparison; a mismatch is false, never an error.
func (s *userService) VerifyPassword(user *domain.User, candidate string) bool {
	if user == nil {
		return false
	}
	return utils.CheckPasswordHash(candidate, user.PasswordHash)
}

func (s *userService) SetPassword(ctx context.Context, userID string, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) RotateRefreshToken(ctx context.Context, userID string, expectedHash, newHash string, newExpiryTime time.Time) error {
	return s.userRepo.RotateRefreshToken(ctx, userID, expectedHash, newHash, newExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
