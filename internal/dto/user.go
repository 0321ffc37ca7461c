package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// UserResponse is the public projection of a user. It never carries the password
// hash or refresh token fields.
type UserResponse struct {
	UserID     string    `json:"userID"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
	}
}

// UpdateAccountRequest defines the fields allowed in an account-details update.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateAccountRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email" binding:"omitempty,email"`
}
