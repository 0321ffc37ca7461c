package handlers

import (
	"net/http"
	"time"

	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// CookieHelper manages the http-only authentication cookies for browser
// clients. Tokens also travel in the JSON body for non-browser API clients.
type CookieHelper struct {
	accessName  string
	refreshName string
	path        string
	secure      bool
}

// NewCookieHelper creates a cookie helper from application configuration.
// Cookies are marked Secure outside development.
func NewCookieHelper(cfg *config.Config) *CookieHelper {
	return &CookieHelper{
		accessName:  cfg.AccessTokenCookieName,
		refreshName: cfg.RefreshTokenCookieName,
		path:        cfg.CookiePath,
		secure:      cfg.IsProduction,
	}
}

// SetAuthCookies sets both access and refresh token cookies.
func (h *CookieHelper) SetAuthCookies(c *gin.Context, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Time) {
	h.setCookie(c, h.accessName, accessToken, int(time.Until(accessExpiry).Seconds()))
	h.setCookie(c, h.refreshName, refreshToken, int(time.Until(refreshExpiry).Seconds()))
}

// ClearAuthCookies removes both authentication cookies.
func (h *CookieHelper) ClearAuthCookies(c *gin.Context) {
	h.setCookie(c, h.accessName, "", -1)
	h.setCookie(c, h.refreshName, "", -1)
}

// GetRefreshToken retrieves the refresh token from its cookie, or "".
func (h *CookieHelper) GetRefreshToken(c *gin.Context) string {
	token, err := c.Cookie(h.refreshName)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	// httpOnly is always true for auth cookies
	c.SetCookie(name, value, maxAge, h.path, "", h.secure, true)
}
