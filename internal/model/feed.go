package model

import "time"

type Feed struct {
	ID                     int64
	CategoryID             *int64
	Title                  string
	URL                    string
	Nickname               *string
	RefreshIntervalSeconds *int
	Paused                 bool
	NotifyEnabled          bool
	LastSyncedAt           *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DisplayName prefers the user-assigned nickname over the upstream title.
func (f Feed) DisplayName() string {
	if f.Nickname != nil && *f.Nickname != "" {
		return *f.Nickname
	}
	return f.Title
}
