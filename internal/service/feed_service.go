//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"risible/backend/internal/fetcher"
	"risible/backend/internal/model"
	"risible/backend/internal/repository"
	"risible/backend/internal/urlutil"
	"risible/backend/pkg/logger"
)

// placeholderTitle is what a subscription shows until its first successful
// fetch fills in the upstream title.
const placeholderTitle = "Loading..."

type FeedService interface {
	Subscribe(ctx context.Context, feedURL string, categoryID *int64, nickname string) (model.Feed, error)
	Preview(ctx context.Context, feedURL string) (*model.ParsedFeed, error)
	List(ctx context.Context, categoryID *int64) ([]model.Feed, error)
	Get(ctx context.Context, id int64) (model.Feed, error)
	Update(ctx context.Context, id int64, update FeedUpdate) (model.Feed, error)
	Delete(ctx context.Context, id int64) error
}

// FeedUpdate carries the user-editable fields; nil pointers leave the stored
// value untouched.
type FeedUpdate struct {
	Nickname               *string
	CategoryID             *int64
	ClearCategory          bool
	RefreshIntervalSeconds *int
	ClearRefreshInterval   bool
	Paused                 *bool
	NotifyEnabled          *bool
}

type feedService struct {
	feeds       repository.FeedRepository
	items       repository.ItemRepository
	categories  repository.CategoryRepository
	fetcher     fetcher.Fetcher
	mergePrefix int
}

func NewFeedService(feeds repository.FeedRepository, items repository.ItemRepository, categories repository.CategoryRepository, fetch fetcher.Fetcher, mergePrefix int) FeedService {
	if mergePrefix <= 0 {
		mergePrefix = 50
	}
	return &feedService{
		feeds:       feeds,
		items:       items,
		categories:  categories,
		fetcher:     fetch,
		mergePrefix: mergePrefix,
	}
}

// Subscribe registers the URL and then tries a first fetch to fill in the
// real title and the initial items. A failed first fetch keeps the
// subscription; the next sync pass will retry it.
func (s *feedService) Subscribe(ctx context.Context, feedURL string, categoryID *int64, nickname string) (model.Feed, error) {
	trimmedURL := urlutil.StripFragment(feedURL)
	if !isValidFeedURL(trimmedURL) {
		return model.Feed{}, ErrInvalid
	}

	if existing, err := s.feeds.FindByURL(ctx, trimmedURL); err != nil {
		return model.Feed{}, fmt.Errorf("check feed url: %w", err)
	} else if existing != nil {
		return model.Feed{}, ErrConflict
	}

	if categoryID != nil {
		if _, err := s.categories.GetByID(ctx, *categoryID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.Feed{}, ErrNotFound
			}
			return model.Feed{}, fmt.Errorf("check category: %w", err)
		}
	}

	feed := model.Feed{
		CategoryID:    categoryID,
		Title:         placeholderTitle,
		URL:           trimmedURL,
		NotifyEnabled: true,
	}
	if trimmedNickname := strings.TrimSpace(nickname); trimmedNickname != "" {
		feed.Nickname = &trimmedNickname
	}

	feed, err := s.feeds.Create(ctx, feed)
	if err != nil {
		return model.Feed{}, fmt.Errorf("create feed: %w", err)
	}

	parsed, err := s.fetcher.Fetch(ctx, trimmedURL)
	if err != nil {
		logger.Warn("initial feed fetch failed", "module", "service", "action", "subscribe", "resource", "feed", "result", "failed", "feed_id", feed.ID, "url", trimmedURL, "error", err)
		return feed, nil
	}

	if title := strings.TrimSpace(parsed.Title); title != "" {
		if err := s.feeds.UpdateTitle(ctx, feed.ID, title); err == nil {
			feed.Title = title
		}
	}

	added, err := mergeParsedItems(ctx, s.items, feed.ID, parsed.Items, s.mergePrefix)
	if err != nil {
		logger.Warn("initial item merge failed", "module", "service", "action", "subscribe", "resource", "feed", "result", "failed", "feed_id", feed.ID, "error", err)
		return feed, nil
	}
	logger.Info("feed subscribed", "module", "service", "action", "subscribe", "resource", "feed", "result", "ok", "feed_id", feed.ID, "title", feed.Title, "items", added)

	return feed, nil
}

// Preview fetches and parses without persisting anything.
func (s *feedService) Preview(ctx context.Context, feedURL string) (*model.ParsedFeed, error) {
	trimmedURL := strings.TrimSpace(feedURL)
	if !isValidFeedURL(trimmedURL) {
		return nil, ErrInvalid
	}

	parsed, err := s.fetcher.Fetch(ctx, trimmedURL)
	if err != nil {
		return nil, err
	}

	if len(parsed.Items) > s.mergePrefix {
		parsed.Items = parsed.Items[:s.mergePrefix]
	}
	return parsed, nil
}

func (s *feedService) List(ctx context.Context, categoryID *int64) ([]model.Feed, error) {
	return s.feeds.List(ctx, categoryID)
}

func (s *feedService) Get(ctx context.Context, id int64) (model.Feed, error) {
	feed, err := s.feeds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Feed{}, ErrNotFound
		}
		return model.Feed{}, fmt.Errorf("get feed: %w", err)
	}
	return feed, nil
}

func (s *feedService) Update(ctx context.Context, id int64, update FeedUpdate) (model.Feed, error) {
	feed, err := s.Get(ctx, id)
	if err != nil {
		return model.Feed{}, err
	}

	if update.ClearCategory {
		feed.CategoryID = nil
	} else if update.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *update.CategoryID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.Feed{}, ErrNotFound
			}
			return model.Feed{}, fmt.Errorf("check category: %w", err)
		}
		feed.CategoryID = update.CategoryID
	}

	if update.Nickname != nil {
		trimmed := strings.TrimSpace(*update.Nickname)
		if trimmed == "" {
			feed.Nickname = nil
		} else {
			feed.Nickname = &trimmed
		}
	}

	if update.ClearRefreshInterval {
		feed.RefreshIntervalSeconds = nil
	} else if update.RefreshIntervalSeconds != nil {
		if *update.RefreshIntervalSeconds <= 0 {
			return model.Feed{}, ErrInvalid
		}
		feed.RefreshIntervalSeconds = update.RefreshIntervalSeconds
	}

	if update.Paused != nil {
		feed.Paused = *update.Paused
	}
	if update.NotifyEnabled != nil {
		feed.NotifyEnabled = *update.NotifyEnabled
	}

	return s.feeds.Update(ctx, feed)
}

// Delete removes the subscription and every item it owns.
func (s *feedService) Delete(ctx context.Context, id int64) error {
	if err := s.feeds.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func isValidFeedURL(value string) bool {
	parsed, err := url.ParseRequestURI(urlutil.StripFragment(value))
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}
