package models

import (
	"database/sql"
	"time"
)

// Video mirrors a row of the videos table.
type Video struct {
	VideoID     string         `db:"video_id"`
	OwnerID     string         `db:"owner_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Thumbnail   string         `db:"thumbnail"`
	Duration    int64          `db:"duration"`
	Views       int64          `db:"views"`
	CreatedAt   time.Time      `db:"created_at"`
}

// WatchHistoryItem mirrors a row of the watch_history table. Position preserves
// append order per user.
type WatchHistoryItem struct {
	UserID    string    `db:"user_id"`
	VideoID   string    `db:"video_id"`
	Position  int64     `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}
