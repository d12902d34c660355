package model

import "time"

// SyncError records the last failure for one feed within the current sync
// pass. Feeds that succeed or are skipped have no entry.
type SyncError struct {
	FeedID    int64
	FeedTitle string
	FeedURL   string
	Kind      string
	Message   string
	At        time.Time
}
