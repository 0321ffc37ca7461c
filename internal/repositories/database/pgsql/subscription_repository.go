package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSubscriptionRepository struct {
	db *pgxpool.Pool
}

func newPgxSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepository {
	return &PgxSubscriptionRepository{db: db}
}

var _ portsrepo.SubscriptionRepository = (*PgxSubscriptionRepository)(nil)

func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
        INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, sub.SubscriptionID, sub.SubscriberID, sub.ChannelID, sub.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("already subscribed: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	query := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, subscriberID, channelID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSubscriptionRepository) SubscriptionExists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2);`
	var exists bool
	if err := r.db.QueryRow(ctx, query, subscriberID, channelID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscription existence: %w", err)
	}
	return exists, nil
}
