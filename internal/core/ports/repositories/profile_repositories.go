package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// ProfileRepository serves the aggregation read-models. Both queries are
// multi-collection joins with projection, expressed as single SQL statements.
type ProfileRepository interface {
	// GetChannelProfile resolves a channel by username and aggregates subscriber
	// counts plus the viewer's isSubscribed flag. viewerID may be empty
	// (anonymous), which always yields IsSubscribed=false.
	// Returns apperrors.ErrNotFound when the username does not resolve.
	GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error)

	// GetWatchHistory returns the user's watch history in stored append order,
	// each entry joined to its video and a single owner summary.
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error)
}
