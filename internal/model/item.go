package model

import "time"

type Item struct {
	ID          int64
	FeedID      int64
	Title       string
	Link        string
	Description *string
	ImageURL    *string
	PublishedAt time.Time
	CreatedAt   time.Time
}
