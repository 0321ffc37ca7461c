package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// ProfileSvcFacade serves the derived read-models and the write paths that feed them.
type ProfileSvcFacade interface {
	// GetChannelProfile returns the channel view for the requested username as
	// seen by viewerID (empty for anonymous viewers).
	GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error)

	// GetWatchHistory returns the user's watch history in stored order.
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error)

	// RecordView appends the video to the user's watch history and bumps the
	// video's view counter. Returns the viewed video.
	RecordView(ctx context.Context, userID, videoID string) (*domain.Video, error)

	// ToggleSubscription subscribes or unsubscribes the viewer to/from the
	// channel and reports the resulting subscribed state.
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error)
}
