package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// SubscriptionRepository defines persistence operations for subscription edges.
type SubscriptionRepository interface {
	// SaveSubscription inserts a subscriber->channel edge. Returns
	// apperrors.ErrDuplicate if the edge already exists.
	SaveSubscription(ctx context.Context, sub domain.Subscription) error

	// DeleteSubscription removes the edge. Returns apperrors.ErrNotFound when
	// no such edge exists.
	DeleteSubscription(ctx context.Context, subscriberID, channelID string) error

	// SubscriptionExists reports whether subscriber follows channel.
	SubscriptionExists(ctx context.Context, subscriberID, channelID string) (bool, error)
}
