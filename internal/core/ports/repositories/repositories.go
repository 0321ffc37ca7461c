package repositories

// RepositoryProvider bundles all repositories for injection into the service layer.
type RepositoryProvider struct {
	UserRepo         UserRepository
	SubscriptionRepo SubscriptionRepository
	VideoRepo        VideoRepository
	ProfileRepo      ProfileRepository
}
