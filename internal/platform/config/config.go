package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Access token (short-lived JWT) config
	AccessTokenSecret         string
	AccessTokenExpiryDuration time.Duration
	JWTIssuer                 string

	// Refresh token (long-lived JWT, stored hashed server-side) config
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration

	// Cookie delivery for browser clients
	AccessTokenCookieName  string
	RefreshTokenCookieName string
	CookiePath             string

	// Media storage for avatar/cover uploads
	MediaDir     string
	MediaBaseURL string

	// CORS
	AllowedOrigins []string

	// Login/register rate limit, in ulule/limiter format (e.g. "5-M")
	AuthRateLimit string

	// Analytics
	PosthogAPIKey string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ACCESS_TOKEN_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_DURATION", "15m")
	viper.SetDefault("JWT_ISSUER", "vidtube-backend")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "240h")
	viper.SetDefault("ACCESS_TOKEN_COOKIE_NAME", "accessToken")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")
	viper.SetDefault("COOKIE_PATH", "/")
	viper.SetDefault("MEDIA_DIR", "./media")
	viper.SetDefault("MEDIA_BASE_URL", "http://localhost:8080/media")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: ACCESS_TOKEN_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	accessExpiryStr := viper.GetString("ACCESS_TOKEN_EXPIRY_DURATION")
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		accessExpiry = 15 * time.Minute
		log.Printf("Warning: Invalid value for ACCESS_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", accessExpiryStr, accessExpiry.String())
	}
	cfg.AccessTokenExpiryDuration = accessExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "default_insecure_refresh_secret_please_change_this_!@#$" {
		log.Println("Warning: REFRESH_TOKEN_SECRET not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = 10 * 24 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry.String())
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiry

	cfg.AccessTokenCookieName = viper.GetString("ACCESS_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.CookiePath = viper.GetString("COOKIE_PATH")

	cfg.MediaDir = viper.GetString("MEDIA_DIR")
	cfg.MediaBaseURL = viper.GetString("MEDIA_BASE_URL")

	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	return cfg, nil
}
