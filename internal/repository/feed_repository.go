//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"risible/backend/internal/model"
	"risible/backend/pkg/snowflake"
)

// FeedRepository defines the interface for feed storage.
type FeedRepository interface {
	Create(ctx context.Context, feed model.Feed) (model.Feed, error)
	GetByID(ctx context.Context, id int64) (model.Feed, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Feed, error)
	FindByURL(ctx context.Context, url string) (*model.Feed, error)
	List(ctx context.Context, categoryID *int64) ([]model.Feed, error)
	ListDue(ctx context.Context, now time.Time, defaultIntervalSeconds int) ([]model.Feed, error)
	Update(ctx context.Context, feed model.Feed) (model.Feed, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	UpdateLastSyncedAt(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

type feedRepository struct {
	db *sql.DB
}

func NewFeedRepository(db *sql.DB) FeedRepository {
	return &feedRepository{db: db}
}

const feedColumns = `id, category_id, title, url, nickname, refresh_interval_seconds, paused, notify_enabled, last_synced_at, created_at, updated_at`

func (r *feedRepository) Create(ctx context.Context, feed model.Feed) (model.Feed, error) {
	if feed.ID == 0 {
		feed.ID = snowflake.NextID()
	}
	now := time.Now().UTC()
	feed.CreatedAt = now
	feed.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feeds (id, category_id, title, url, nickname, refresh_interval_seconds, paused, notify_enabled, last_synced_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, feed.ID, nullableInt64(feed.CategoryID), feed.Title, feed.URL, nullableString(feed.Nickname),
		nullableInt(feed.RefreshIntervalSeconds), boolToInt(feed.Paused), boolToInt(feed.NotifyEnabled),
		nullableTime(feed.LastSyncedAt), formatTime(now), formatTime(now))
	if err != nil {
		return model.Feed{}, err
	}
	return feed, nil
}

func (r *feedRepository) GetByID(ctx context.Context, id int64) (model.Feed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+feedColumns+` FROM feeds WHERE id = ?`, id)
	return scanFeed(row)
}

func (r *feedRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Feed, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM feeds WHERE id IN (%s)`, feedColumns, placeholders), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeeds(rows)
}

func (r *feedRepository) FindByURL(ctx context.Context, url string) (*model.Feed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+feedColumns+` FROM feeds WHERE url = ?`, url)
	feed, err := scanFeed(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &feed, nil
}

func (r *feedRepository) List(ctx context.Context, categoryID *int64) ([]model.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds`
	var args []interface{}
	if categoryID != nil {
		query += ` WHERE category_id = ?`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY title, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeeds(rows)
}

// ListDue returns non-paused feeds whose refresh interval has elapsed since
// their last sync. Feeds without a custom interval use the default.
func (r *feedRepository) ListDue(ctx context.Context, now time.Time, defaultIntervalSeconds int) ([]model.Feed, error) {
	feeds, err := r.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	var due []model.Feed
	for _, feed := range feeds {
		if feed.Paused {
			continue
		}
		if feed.LastSyncedAt == nil {
			due = append(due, feed)
			continue
		}
		interval := defaultIntervalSeconds
		if feed.RefreshIntervalSeconds != nil && *feed.RefreshIntervalSeconds > 0 {
			interval = *feed.RefreshIntervalSeconds
		}
		if !now.Before(feed.LastSyncedAt.Add(time.Duration(interval) * time.Second)) {
			due = append(due, feed)
		}
	}
	return due, nil
}

func (r *feedRepository) Update(ctx context.Context, feed model.Feed) (model.Feed, error) {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `
		UPDATE feeds SET category_id = ?, title = ?, nickname = ?, refresh_interval_seconds = ?, paused = ?, notify_enabled = ?, updated_at = ?
		WHERE id = ?
	`, nullableInt64(feed.CategoryID), feed.Title, nullableString(feed.Nickname), nullableInt(feed.RefreshIntervalSeconds),
		boolToInt(feed.Paused), boolToInt(feed.NotifyEnabled), formatTime(now), feed.ID)
	if err != nil {
		return model.Feed{}, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.Feed{}, err
	}
	if rows == 0 {
		return model.Feed{}, sql.ErrNoRows
	}

	feed.UpdatedAt = now
	return feed, nil
}

func (r *feedRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	now := formatTime(time.Now().UTC())
	_, err := r.db.ExecContext(ctx, `UPDATE feeds SET title = ?, updated_at = ? WHERE id = ?`, title, now, id)
	return err
}

func (r *feedRepository) UpdateLastSyncedAt(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE feeds SET last_synced_at = ? WHERE id = ?`, formatTime(at), id)
	return err
}

// Delete removes a feed; its items go with it via the cascade.
func (r *feedRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM feeds WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanFeed(row rowScanner) (model.Feed, error) {
	var feed model.Feed
	var categoryID sql.NullInt64
	var nickname sql.NullString
	var refreshInterval sql.NullInt64
	var paused, notify int
	var lastSyncedAt sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&feed.ID, &categoryID, &feed.Title, &feed.URL, &nickname, &refreshInterval,
		&paused, &notify, &lastSyncedAt, &createdAt, &updatedAt); err != nil {
		return model.Feed{}, err
	}

	if categoryID.Valid {
		feed.CategoryID = &categoryID.Int64
	}
	if nickname.Valid {
		feed.Nickname = &nickname.String
	}
	if refreshInterval.Valid {
		interval := int(refreshInterval.Int64)
		feed.RefreshIntervalSeconds = &interval
	}
	feed.Paused = paused != 0
	feed.NotifyEnabled = notify != 0
	if lastSyncedAt.Valid {
		if parsed, err := parseTime(lastSyncedAt.String); err == nil {
			feed.LastSyncedAt = &parsed
		}
	}
	feed.CreatedAt, _ = parseTime(createdAt)
	feed.UpdatedAt, _ = parseTime(updatedAt)
	return feed, nil
}

func collectFeeds(rows *sql.Rows) ([]model.Feed, error) {
	var feeds []model.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	return feeds, rows.Err()
}
