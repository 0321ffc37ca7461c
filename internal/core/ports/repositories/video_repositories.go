package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// VideoRepository defines read access to videos plus the watch-history append.
type VideoRepository interface {
	// FindVideoByID retrieves a video by ID. Returns apperrors.ErrNotFound if absent.
	FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error)

	// AppendWatchHistory appends a video to the user's watch history, preserving
	// append order.
	AppendWatchHistory(ctx context.Context, userID, videoID string) error

	// IncrementViews bumps the denormalized view counter of a video.
	IncrementViews(ctx context.Context, videoID string) error
}
