package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles sign-in-with-Google requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	authService        portssvc.AuthSvcFacade
	cookies            *CookieHelper
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		authService:        services.Auth,
		cookies:            NewCookieHelper(cfg),
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in routes.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services, cfg)

	oauth := r.Group("/api/v1/auth/google")
	{
		oauth.GET("/login-url", h.GetLoginURL)
		oauth.POST("/exchange-code", h.ExchangeCode)
	}
}

// GetLoginURL godoc
// @Summary Get the Google login redirect URL
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /auth/google/login-url [get]
func (h *GoogleOAuthHandler) GetLoginURL(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	url := h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state)
	respondSuccess(c, http.StatusOK, gin.H{"url": url, "state": state}, "Login URL generated")
}

// ExchangeCode godoc
// @Summary Exchange a Google authorization code for a session
// @Description Exchanges the code, finds or creates the user by verified email and issues the rotated token pair.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	user, pair, err := h.authService.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Google sign-in completed", slog.String("user_id", user.UserID))
	h.cookies.SetAuthCookies(c, pair.AccessToken, pair.RefreshToken, pair.AccessTokenExpiry, pair.RefreshTokenExpiry)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Logged in with Google successfully")
}
