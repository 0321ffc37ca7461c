package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVideoRepository struct {
	db *pgxpool.Pool
}

func newPgxVideoRepository(db *pgxpool.Pool) portsrepo.VideoRepository {
	return &PgxVideoRepository{db: db}
}

var _ portsrepo.VideoRepository = (*PgxVideoRepository)(nil)

func toDomainVideo(m models.Video) domain.Video {
	d := domain.Video{
		VideoID:   m.VideoID,
		OwnerID:   m.OwnerID,
		Title:     m.Title,
		Thumbnail: m.Thumbnail,
		Duration:  m.Duration,
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
	}
	if m.Description.Valid {
		d.Description = m.Description.String
	}
	return d
}

func (r *PgxVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	query := `
		SELECT video_id, owner_id, title, description, thumbnail, duration, views, created_at
		FROM videos
		WHERE video_id = $1;
	`
	var m models.Video
	err := r.db.QueryRow(ctx, query, videoID).Scan(
		&m.VideoID,
		&m.OwnerID,
		&m.Title,
		&m.Description,
		&m.Thumbnail,
		&m.Duration,
		&m.Views,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find video by ID %s: %w", videoID, err)
	}
	d := toDomainVideo(m)
	return &d, nil
}

// AppendWatchHistory is append-only from the caller's perspective: position is
// assigned by the sequence, so stored order is append order.
func (r *PgxVideoRepository) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	query := `INSERT INTO watch_history (user_id, video_id) VALUES ($1, $2);`
	if _, err := r.db.Exec(ctx, query, userID, videoID); err != nil {
		return fmt.Errorf("failed to append watch history for user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxVideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	query := `UPDATE videos SET views = views + 1 WHERE video_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("failed to increment views for video %s: %w", videoID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
