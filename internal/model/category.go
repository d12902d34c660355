package model

import "time"

type Category struct {
	ID        int64
	Name      string
	Color     string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
