package services

// ServiceContainer bundles all services for injection into the handler layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	Auth        AuthSvcFacade
	Profile     ProfileSvcFacade
	Uploader    UploaderSvc
	GoogleOAuth GoogleOAuthSvcFacade
}
