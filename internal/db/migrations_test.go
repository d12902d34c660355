package db_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"risible/backend/internal/db"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	name := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", name)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_CreatesSchema(t *testing.T) {
	database := openMemoryDB(t)
	require.NoError(t, db.Migrate(database))

	for _, table := range []string{"categories", "feeds", "items", "settings"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	var indexName string
	err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_items_feed_published'`).Scan(&indexName)
	require.NoError(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openMemoryDB(t)
	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_AddsNotifyEnabledToLegacySchema(t *testing.T) {
	database := openMemoryDB(t)

	// A feeds table from before notifications existed.
	_, err := database.Exec(`
		CREATE TABLE feeds (
			id INTEGER PRIMARY KEY,
			category_id INTEGER,
			title TEXT NOT NULL,
			url TEXT NOT NULL UNIQUE,
			nickname TEXT,
			refresh_interval_seconds INTEGER,
			paused INTEGER NOT NULL DEFAULT 0,
			last_synced_at TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO feeds (id, title, url, created_at, updated_at) VALUES (1, 'legacy', 'https://legacy.test/rss', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	var notify int
	err = database.QueryRow(`SELECT notify_enabled FROM feeds WHERE id = 1`).Scan(&notify)
	require.NoError(t, err)
	require.Equal(t, 1, notify)
}

func TestMigrate_ItemLinkUniquePerFeed(t *testing.T) {
	database := openMemoryDB(t)
	require.NoError(t, db.Migrate(database))

	now := "2026-01-01T00:00:00Z"
	_, err := database.Exec(`INSERT INTO feeds (id, title, url, created_at, updated_at) VALUES (1, 'f', 'https://f.test/rss', ?, ?)`, now, now)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO items (id, feed_id, title, link, published_at, created_at) VALUES (1, 1, 'a', 'https://f.test/a', ?, ?)`, now, now)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO items (id, feed_id, title, link, published_at, created_at) VALUES (2, 1, 'dup', 'https://f.test/a', ?, ?)`, now, now)
	require.Error(t, err)
}
