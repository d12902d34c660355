//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"risible/backend/internal/model"
	"risible/backend/internal/repository"
)

// ItemQuery narrows a timeline listing. Zero values mean "no filter"; the
// limit defaults to a page when unset.
type ItemQuery struct {
	FeedID     *int64
	CategoryID *int64
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

const defaultItemPageSize = 50

type ItemService interface {
	List(ctx context.Context, query ItemQuery) ([]model.Item, error)
	Get(ctx context.Context, id int64) (model.Item, error)
}

type itemService struct {
	items repository.ItemRepository
	feeds repository.FeedRepository
}

func NewItemService(items repository.ItemRepository, feeds repository.FeedRepository) ItemService {
	return &itemService{items: items, feeds: feeds}
}

func (s *itemService) List(ctx context.Context, query ItemQuery) ([]model.Item, error) {
	if query.Limit <= 0 {
		query.Limit = defaultItemPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	if query.FeedID != nil {
		if _, err := s.feeds.GetByID(ctx, *query.FeedID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("check feed: %w", err)
		}
	}

	return s.items.List(ctx, repository.ItemListFilter{
		FeedID:     query.FeedID,
		CategoryID: query.CategoryID,
		From:       query.From,
		To:         query.To,
		Limit:      query.Limit,
		Offset:     query.Offset,
	})
}

func (s *itemService) Get(ctx context.Context, id int64) (model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, ErrNotFound
		}
		return model.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}
