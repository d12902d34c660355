//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"risible/backend/internal/model"
	"risible/backend/pkg/snowflake"
)

// ItemListFilter narrows item queries. Zero values mean "no constraint".
type ItemListFilter struct {
	FeedID     *int64
	CategoryID *int64
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// ItemRepository defines the interface for feed item storage.
type ItemRepository interface {
	Create(ctx context.Context, item model.Item) (model.Item, error)
	GetByID(ctx context.Context, id int64) (model.Item, error)
	ExistsByLink(ctx context.Context, feedID int64, link string) (bool, error)
	List(ctx context.Context, filter ItemListFilter) ([]model.Item, error)
	CountByFeed(ctx context.Context, feedID int64) (int, error)
	PruneToCap(ctx context.Context, feedID int64, keep int) (int, error)
	DeleteByFeed(ctx context.Context, feedID int64) error
}

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, feed_id, title, link, description, image_url, published_at, created_at`

func (r *itemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if item.ID == 0 {
		item.ID = snowflake.NextID()
	}
	now := time.Now().UTC()
	item.CreatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (id, feed_id, title, link, description, image_url, published_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.FeedID, item.Title, item.Link, nullableString(item.Description),
		nullableString(item.ImageURL), formatTime(item.PublishedAt), formatTime(now))
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (model.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	return scanItem(row)
}

func (r *itemRepository) ExistsByLink(ctx context.Context, feedID int64, link string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM items WHERE feed_id = ? AND link = ?`, feedID, link).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *itemRepository) List(ctx context.Context, filter ItemListFilter) ([]model.Item, error) {
	query := `SELECT i.id, i.feed_id, i.title, i.link, i.description, i.image_url, i.published_at, i.created_at FROM items i`
	var where []string
	var args []interface{}

	if filter.CategoryID != nil {
		query += ` JOIN feeds f ON f.id = i.feed_id`
		where = append(where, `f.category_id = ?`)
		args = append(args, *filter.CategoryID)
	}
	if filter.FeedID != nil {
		where = append(where, `i.feed_id = ?`)
		args = append(args, *filter.FeedID)
	}
	if filter.From != nil {
		where = append(where, `i.published_at >= ?`)
		args = append(args, formatTime(*filter.From))
	}
	if filter.To != nil {
		where = append(where, `i.published_at <= ?`)
		args = append(args, formatTime(*filter.To))
	}

	for i, clause := range where {
		if i == 0 {
			query += ` WHERE ` + clause
		} else {
			query += ` AND ` + clause
		}
	}
	query += ` ORDER BY i.published_at DESC, i.id DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, filter.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *itemRepository) CountByFeed(ctx context.Context, feedID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE feed_id = ?`, feedID).Scan(&count)
	return count, err
}

// PruneToCap deletes every item of the feed beyond the newest `keep`, ordered
// by published timestamp descending with id as the stable tie-break. Returns
// the number of rows removed.
func (r *itemRepository) PruneToCap(ctx context.Context, feedID int64, keep int) (int, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM items WHERE feed_id = ? AND id NOT IN (
			SELECT id FROM items WHERE feed_id = ?
			ORDER BY published_at DESC, id DESC
			LIMIT ?
		)
	`, feedID, feedID, keep)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

func (r *itemRepository) DeleteByFeed(ctx context.Context, feedID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE feed_id = ?`, feedID)
	return err
}

func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	var description, imageURL sql.NullString
	var publishedAt, createdAt string

	if err := row.Scan(&item.ID, &item.FeedID, &item.Title, &item.Link, &description, &imageURL, &publishedAt, &createdAt); err != nil {
		return model.Item{}, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	if imageURL.Valid {
		item.ImageURL = &imageURL.String
	}
	item.PublishedAt, _ = parseTime(publishedAt)
	item.CreatedAt, _ = parseTime(createdAt)
	return item, nil
}
