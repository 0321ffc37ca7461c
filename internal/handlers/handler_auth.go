package handlers

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cookies     *CookieHelper
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     NewCookieHelper(cfg),
	}
}

// registerAuthRoutes sets up the public and session-authenticated auth routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	sessionAuth := r.Group("/api/v1/auth", middleware.AuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName))
	{
		sessionAuth.POST("/logout", h.Logout)
		sessionAuth.POST("/change-password", h.ChangePassword)
	}
}

// stageUploadedFile saves a multipart file into the OS temp dir so the upload
// collaborator can be handed a plain local path. Returns "" when the part is absent.
func stageUploadedFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == multipart.ErrMessageTooLarge {
			return "", nil
		}
		return "", nil
	}
	stagedPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, stagedPath); err != nil {
		return "", err
	}
	return stagedPath, nil
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user from multipart form fields plus an avatar file (required) and cover image (optional).
// @Tags auth
// @Accept mpfd
// @Produce json
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Username or email already exists"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Invalid request: "+err.Error())
		return
	}

	avatarPath, err := stageUploadedFile(c, "avatar")
	if err != nil {
		logger.Error("Failed to stage avatar upload", slog.String("error", err.Error()))
		respondBadRequest(c, "Could not read avatar file")
		return
	}
	coverPath, err := stageUploadedFile(c, "coverImage")
	if err != nil {
		logger.Error("Failed to stage cover image upload", slog.String("error", err.Error()))
		respondBadRequest(c, "Could not read cover image file")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req, avatarPath, coverPath)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	respondSuccess(c, http.StatusCreated, dto.ToUserResponse(user), "User registered successfully")
}

// Login godoc
// @Summary User login
// @Description Authenticates by username or email and returns the rotated token pair. Tokens are also set as http-only cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	user, pair, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, pair.AccessToken, pair.RefreshToken, pair.AccessTokenExpiry, pair.RefreshTokenExpiry)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Logged in successfully")
}

// Logout godoc
// @Summary User logout
// @Description Clears the stored refresh token and the auth cookies. Idempotent.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, errUnauthorizedRequest)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.cookies.ClearAuthCookies(c)
	respondSuccess(c, http.StatusOK, nil, "Logged out successfully")
}

// Refresh godoc
// @Summary Refresh the token pair
// @Description Exchanges the refresh token (cookie or body) for a new pair. The presented token must be the one currently stored.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest false "Refresh token (optional for cookie clients)"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	presented := h.cookies.GetRefreshToken(c)
	if presented == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	_, pair, err := h.authService.Refresh(c.Request.Context(), presented)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, pair.AccessToken, pair.RefreshToken, pair.AccessTokenExpiry, pair.RefreshTokenExpiry)
	respondSuccess(c, http.StatusOK, dto.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Token refreshed successfully")
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param change body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope "Old password incorrect"
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, errUnauthorizedRequest)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Password changed successfully")
}
