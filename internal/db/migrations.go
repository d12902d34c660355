package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  color TEXT NOT NULL DEFAULT '',
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS feeds (
  id INTEGER PRIMARY KEY,
  category_id INTEGER,
  title TEXT NOT NULL,
  url TEXT NOT NULL UNIQUE,
  nickname TEXT,
  refresh_interval_seconds INTEGER,
  paused INTEGER NOT NULL DEFAULT 0,
  notify_enabled INTEGER NOT NULL DEFAULT 1,
  last_synced_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_feeds_category_id ON feeds(category_id);

CREATE TABLE IF NOT EXISTS items (
  id INTEGER PRIMARY KEY,
  feed_id INTEGER NOT NULL,
  title TEXT NOT NULL,
  link TEXT NOT NULL,
  description TEXT,
  image_url TEXT,
  published_at TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (feed_id) REFERENCES feeds(id) ON DELETE CASCADE,
  UNIQUE (feed_id, link)
);

CREATE INDEX IF NOT EXISTS idx_items_feed_id ON items(feed_id);
CREATE INDEX IF NOT EXISTS idx_items_published_at ON items(published_at);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add notify_enabled to feeds created before notifications
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('feeds') WHERE name = 'notify_enabled'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check notify_enabled column: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE feeds ADD COLUMN notify_enabled INTEGER NOT NULL DEFAULT 1`); err != nil {
			return fmt.Errorf("add notify_enabled column: %w", err)
		}
	}

	// Migration 2: Composite index covering the retention-prune ordering
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_items_feed_published ON items(feed_id, published_at DESC, id DESC)`); err != nil {
		return fmt.Errorf("create idx_items_feed_published: %w", err)
	}

	return nil
}
