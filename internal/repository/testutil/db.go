package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"risible/backend/internal/db"
	"risible/backend/internal/model"
	"risible/backend/internal/repository"
	"risible/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce makes sure the ID node is initialized exactly once across
// parallel tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory SQLite database and runs all migrations.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is not usable inside sync.Once, so panic instead.
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared-cache mode so the in-memory database survives concurrent
	// connections; a unique name per test avoids cross-test bleed.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func timeVal(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(repository.TimeLayout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedCategory inserts a category row and returns its ID.
func SeedCategory(t *testing.T, db *sql.DB, name, color string, sortOrder int) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(repository.TimeLayout)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO categories (id, name, color, sort_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, color, sortOrder, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	return id
}

// SeedFeed inserts a feed row and returns its ID.
func SeedFeed(t *testing.T, db *sql.DB, feed model.Feed) int64 {
	t.Helper()

	if feed.ID == 0 {
		feed.ID = snowflake.NextID()
	}

	now := time.Now().UTC().Format(repository.TimeLayout)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO feeds (id, category_id, title, url, nickname, refresh_interval_seconds, paused, notify_enabled, last_synced_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		feed.ID, ptrVal(feed.CategoryID), feed.Title, feed.URL, ptrVal(feed.Nickname), ptrVal(feed.RefreshIntervalSeconds),
		boolToInt(feed.Paused), boolToInt(feed.NotifyEnabled), timeVal(feed.LastSyncedAt), now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed feed: %v", err)
	}

	return feed.ID
}

// SeedItem inserts an item row and returns its ID.
func SeedItem(t *testing.T, db *sql.DB, item model.Item) int64 {
	t.Helper()

	if item.ID == 0 {
		item.ID = snowflake.NextID()
	}
	if item.Link == "" {
		item.Link = fmt.Sprintf("https://example.com/seed/%d", item.ID)
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now().UTC()
	}

	now := time.Now().UTC().Format(repository.TimeLayout)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO items (id, feed_id, title, link, description, image_url, published_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.FeedID, item.Title, item.Link, ptrVal(item.Description), ptrVal(item.ImageURL),
		item.PublishedAt.UTC().Format(repository.TimeLayout), now,
	)
	if err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}

	return item.ID
}

// SeedSetting inserts a settings row.
func SeedSetting(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()

	now := time.Now().UTC().Format(repository.TimeLayout)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, now,
	)
	if err != nil {
		t.Fatalf("failed to seed setting: %v", err)
	}
}
