package services

import (
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. The uploader is injected because it is an external collaborator
// rather than a store-backed service.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, uploader portssvc.UploaderSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Uploader = uploader
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Auth = NewAuthService(container.User, container.Token, container.Uploader, container.GoogleOAuth)
	container.Profile = NewProfileService(repos.ProfileRepo, repos.SubscriptionRepo, repos.VideoRepo)

	return container
}
