package domain

import "time"

// Video is the minimal video record this slice reads. Videos are owned by a user
// and treated as read-only here except for watch-history appends.
type Video struct {
	VideoID     string    `json:"videoID"`
	OwnerID     string    `json:"ownerID"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    int64     `json:"duration"` // seconds
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OwnerSummary is the denormalized owner projection attached to watch-history entries.
type OwnerSummary struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// WatchHistoryEntry joins a previously viewed video to its owner summary.
// Entries keep the append order stored for the user.
type WatchHistoryEntry struct {
	Video Video        `json:"video"`
	Owner OwnerSummary `json:"owner"`
}
