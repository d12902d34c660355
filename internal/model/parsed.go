package model

import "time"

// ParsedFeed is the transient result of fetching and parsing one feed.
// It is produced fresh on every fetch and discarded after merging.
type ParsedFeed struct {
	Title string
	Items []ParsedItem
}

type ParsedItem struct {
	Title       string
	Link        string
	Description *string
	ImageURL    *string
	PublishedAt time.Time
}
