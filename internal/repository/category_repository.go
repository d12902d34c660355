//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"risible/backend/internal/model"
	"risible/backend/pkg/snowflake"
)

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, category model.Category) (model.Category, error)
	GetByID(ctx context.Context, id int64) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category model.Category) (model.Category, error)
	Delete(ctx context.Context, id int64) error
	MaxSortOrder(ctx context.Context) (int, error)
}

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	if category.ID == 0 {
		category.ID = snowflake.NextID()
	}
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, color, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, category.ID, category.Name, category.Color, category.SortOrder, formatTime(now), formatTime(now))
	if err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, color, sort_order, created_at, updated_at FROM categories WHERE id = ?
	`, id)
	return scanCategory(row)
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, color, sort_order, created_at, updated_at FROM categories ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, color = ?, sort_order = ?, updated_at = ? WHERE id = ?
	`, category.Name, category.Color, category.SortOrder, formatTime(now), category.ID)
	if err != nil {
		return model.Category{}, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.Category{}, err
	}
	if rows == 0 {
		return model.Category{}, sql.ErrNoRows
	}

	category.UpdatedAt = now
	return category, nil
}

// Delete removes a category. Feeds keep existing with their category nulled
// out by the foreign key action.
func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
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

func (r *categoryRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var max sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(sort_order) FROM categories`).Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (model.Category, error) {
	var category model.Category
	var createdAt, updatedAt string
	if err := row.Scan(&category.ID, &category.Name, &category.Color, &category.SortOrder, &createdAt, &updatedAt); err != nil {
		return model.Category{}, err
	}
	category.CreatedAt, _ = parseTime(createdAt)
	category.UpdatedAt, _ = parseTime(updatedAt)
	return category, nil
}
