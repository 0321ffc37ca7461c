package dto

// RegisterUserRequest carries the multipart form fields of a registration.
// The avatar/coverImage files travel alongside as multipart file parts.
type RegisterUserRequest struct {
	FullName string `form:"fullName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Username string `form:"username" binding:"required,username"`
	Password string `form:"password" binding:"required"`
}

// LoginRequest accepts a username or an email as the identifier.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token for non-browser clients; browser
// clients present it via the http-only cookie instead.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest carries a password reset for an authenticated user.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ExchangeCodeRequest carries the Google OAuth authorization code from the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginResponse returns the public user view plus the freshly rotated token pair.
// Tokens are duplicated into http-only cookies for browser clients.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
