package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// profileRepository implements the aggregation read-models as single SQL
// statements: match, join, add computed fields, project.
type profileRepository struct {
	db *pgxpool.Pool
}

func newProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepository {
	return &profileRepository{db: db}
}

var _ portsrepo.ProfileRepository = (*profileRepository)(nil)

// GetChannelProfile aggregates subscriber counts and the viewer's subscribed
// flag for a channel in one round trip. An empty viewerID (anonymous viewer)
// makes the EXISTS clause false without special-casing.
func (r *profileRepository) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	query := `
		SELECT
			u.user_id,
			u.full_name,
			u.username,
			u.email,
			u.avatar,
			COALESCE(u.cover_image, '') AS cover_image,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id) AS subscriber_count,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.user_id) AS subscribed_to_count,
			EXISTS (
				SELECT 1 FROM subscriptions s
				WHERE s.channel_id = u.user_id AND s.subscriber_id = $2
			) AS is_subscribed
		FROM users u
		WHERE u.username = lower($1);
	`
	var profile domain.ChannelProfile
	err := r.db.QueryRow(ctx, query, username, viewerID).Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.Username,
		&profile.Email,
		&profile.Avatar,
		&profile.CoverImage,
		&profile.SubscriberCount,
		&profile.SubscribedToCount,
		&profile.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to aggregate channel profile for %s: %w", username, err)
	}
	return &profile, nil
}

// GetWatchHistory joins the per-user history to videos and collapses the owner
// join to a single summary per entry. Order is the stored append order.
func (r *profileRepository) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	query := `
		SELECT
			v.video_id,
			v.owner_id,
			v.title,
			COALESCE(v.description, '') AS description,
			v.thumbnail,
			v.duration,
			v.views,
			v.created_at,
			o.full_name,
			o.username,
			o.avatar
		FROM watch_history wh
		JOIN videos v ON v.video_id = wh.video_id
		JOIN users o ON o.user_id = v.owner_id
		WHERE wh.user_id = $1
		ORDER BY wh.position;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history for user %s: %w", userID, err)
	}
	defer rows.Close()

	entries := []domain.WatchHistoryEntry{}
	for rows.Next() {
		var e domain.WatchHistoryEntry
		if err := rows.Scan(
			&e.Video.VideoID,
			&e.Video.OwnerID,
			&e.Video.Title,
			&e.Video.Description,
			&e.Video.Thumbnail,
			&e.Video.Duration,
			&e.Video.Views,
			&e.Video.CreatedAt,
			&e.Owner.FullName,
			&e.Owner.Username,
			&e.Owner.Avatar,
		); err != nil {
			return nil, fmt.Errorf("failed to scan watch history row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating watch history rows: %w", rows.Err())
	}

	return entries, nil
}
