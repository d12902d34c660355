//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"risible/backend/internal/model"
	"risible/backend/internal/repository"
)

type CategoryService interface {
	Create(ctx context.Context, name, color string) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int64, name, color string) (model.Category, error)
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, orderedIDs []int64) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

// Create appends the new category after the current last sort position.
func (s *categoryService) Create(ctx context.Context, name, color string) (model.Category, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return model.Category{}, ErrInvalid
	}

	maxOrder, err := s.categories.MaxSortOrder(ctx)
	if err != nil {
		return model.Category{}, fmt.Errorf("max sort order: %w", err)
	}

	return s.categories.Create(ctx, model.Category{
		Name:      trimmedName,
		Color:     strings.TrimSpace(color),
		SortOrder: maxOrder + 1,
	})
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id int64, name, color string) (model.Category, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return model.Category{}, ErrInvalid
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, ErrNotFound
		}
		return model.Category{}, fmt.Errorf("get category: %w", err)
	}

	category.Name = trimmedName
	category.Color = strings.TrimSpace(color)
	return s.categories.Update(ctx, category)
}

// Delete removes the category only; its feeds survive uncategorized.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *categoryService) Reorder(ctx context.Context, orderedIDs []int64) error {
	for position, id := range orderedIDs {
		category, err := s.categories.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("get category: %w", err)
		}
		category.SortOrder = position
		if _, err := s.categories.Update(ctx, category); err != nil {
			return fmt.Errorf("update category order: %w", err)
		}
	}
	return nil
}
