package handlers

import (
	"github.com/vidtube/vidtube_backend/cmd/docs"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", GetHome)

	// Uploaded media is served directly from the media directory.
	r.Static("/media", cfg.MediaDir)

	authRequired := middleware.AuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName)
	authOptional := middleware.OptionalAuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName)

	// Public authentication routes plus session-bound logout/change-password
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	// Channel profile (optional auth) and watch history / subscriptions
	registerChannelRoutes(r, authRequired, authOptional, services, posthogClient)

	// Current-user profile management
	v1 := r.Group("/api/v1", authRequired, middleware.PosthogMiddleware(posthogClient))
	registerUserRoutes(v1, services)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
