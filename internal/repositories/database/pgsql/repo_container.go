package pgsql

import (
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
		VideoRepo:        newPgxVideoRepository(dbPool),
		ProfileRepo:      newProfileRepository(dbPool),
	}
}
