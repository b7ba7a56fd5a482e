package entity

import (
	"time"

	"github.com/google/uuid"
)

// LinkClick is one recorded visit through a link.
type LinkClick struct {
	ID        uuid.UUID
	LinkID    uuid.UUID
	UserID    uuid.UUID // Owner of the link, denormalized for per-user stats.
	Referrer  string
	UserAgent string
	IPHash    string // SHA-256 of the client IP; raw addresses are never stored.
	ClickedAt time.Time
}

// DailyClicks is the click count for one calendar day (UTC).
type DailyClicks struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// LinkStats aggregates clicks for one link over a window.
type LinkStats struct {
	LinkID      uuid.UUID     `json:"link_id"`
	Title       string        `json:"title"`
	TotalClicks int64         `json:"total_clicks"`
	WindowTotal int64         `json:"window_clicks"`
	Daily       []DailyClicks `json:"daily"`
}
