//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"io"
	"strings"

	"risible/backend/internal/model"
	"risible/backend/internal/repository"
	"risible/backend/internal/urlutil"
	"risible/backend/pkg/logger"
	"risible/backend/pkg/opml"
)

// OPMLImportResult summarizes one import: how many subscriptions were
// created and how many were skipped as duplicates or invalid.
type OPMLImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type OPMLService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, r io.Reader) (OPMLImportResult, error)
}

type opmlService struct {
	categories repository.CategoryRepository
	feeds      repository.FeedRepository
	sync       SyncService
}

func NewOPMLService(categories repository.CategoryRepository, feeds repository.FeedRepository, sync SyncService) OPMLService {
	return &opmlService{categories: categories, feeds: feeds, sync: sync}
}

// Export renders every subscription grouped by category. Uncategorized feeds
// appear as top-level outlines.
func (s *opmlService) Export(ctx context.Context) ([]byte, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	feeds, err := s.feeds.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	doc := &opml.Document{
		Version: "2.0",
		Head:    opml.Head{Title: "risible subscriptions"},
	}

	byCategory := make(map[int64][]model.Feed)
	var uncategorized []model.Feed
	for _, feed := range feeds {
		if feed.CategoryID == nil {
			uncategorized = append(uncategorized, feed)
			continue
		}
		byCategory[*feed.CategoryID] = append(byCategory[*feed.CategoryID], feed)
	}

	for _, category := range categories {
		group := opml.Outline{Text: category.Name, Title: category.Name}
		for _, feed := range byCategory[category.ID] {
			group.Outlines = append(group.Outlines, feedOutline(feed))
		}
		doc.Body.Outlines = append(doc.Body.Outlines, group)
	}
	for _, feed := range uncategorized {
		doc.Body.Outlines = append(doc.Body.Outlines, feedOutline(feed))
	}

	return opml.Encode(doc)
}

func feedOutline(feed model.Feed) opml.Outline {
	return opml.Outline{
		Text:   feed.DisplayName(),
		Title:  feed.DisplayName(),
		Type:   "rss",
		XMLURL: feed.URL,
	}
}

// Import walks the outline tree, creating one category per named group and
// one subscription per xmlUrl outline. Already-subscribed URLs are skipped,
// and a sync pass over the new feeds runs afterwards.
func (s *opmlService) Import(ctx context.Context, r io.Reader) (OPMLImportResult, error) {
	doc, err := opml.Parse(r)
	if err != nil {
		return OPMLImportResult{}, ErrInvalid
	}

	var result OPMLImportResult
	var newFeedIDs []int64

	for _, outline := range doc.Body.Outlines {
		if outline.XMLURL != "" {
			s.importFeed(ctx, outline, nil, &result, &newFeedIDs)
			continue
		}

		name := strings.TrimSpace(outline.Text)
		if name == "" {
			name = strings.TrimSpace(outline.Title)
		}
		var categoryID *int64
		if name != "" {
			id, err := s.ensureCategory(ctx, name)
			if err != nil {
				return result, err
			}
			categoryID = &id
		}
		for _, child := range flattenOutlines(outline.Outlines) {
			s.importFeed(ctx, child, categoryID, &result, &newFeedIDs)
		}
	}

	logger.Info("opml imported", "module", "service", "action", "import", "resource", "opml", "result", "ok", "imported", result.Imported, "skipped", result.Skipped)

	if s.sync != nil && len(newFeedIDs) > 0 {
		if err := s.sync.SyncFeeds(ctx, newFeedIDs); err != nil {
			logger.Warn("post-import sync failed", "module", "service", "action", "import", "resource", "opml", "result", "failed", "error", err)
		}
	}
	return result, nil
}

func (s *opmlService) importFeed(ctx context.Context, outline opml.Outline, categoryID *int64, result *OPMLImportResult, newFeedIDs *[]int64) {
	feedURL := urlutil.StripFragment(outline.XMLURL)
	if !isValidFeedURL(feedURL) {
		result.Skipped++
		return
	}
	existing, err := s.feeds.FindByURL(ctx, feedURL)
	if err != nil || existing != nil {
		result.Skipped++
		return
	}

	title := strings.TrimSpace(outline.Title)
	if title == "" {
		title = strings.TrimSpace(outline.Text)
	}
	if title == "" {
		title = placeholderTitle
	}

	feed, err := s.feeds.Create(ctx, model.Feed{
		CategoryID:    categoryID,
		Title:         title,
		URL:           feedURL,
		NotifyEnabled: true,
	})
	if err != nil {
		result.Skipped++
		return
	}
	result.Imported++
	*newFeedIDs = append(*newFeedIDs, feed.ID)
}

func (s *opmlService) ensureCategory(ctx context.Context, name string) (int64, error) {
	existing, err := s.categories.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, category := range existing {
		if strings.EqualFold(category.Name, name) {
			return category.ID, nil
		}
	}
	maxOrder, err := s.categories.MaxSortOrder(ctx)
	if err != nil {
		return 0, err
	}
	created, err := s.categories.Create(ctx, model.Category{Name: name, SortOrder: maxOrder + 1})
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

// flattenOutlines collects the feed outlines of a group, descending through
// nested groups some exporters produce.
func flattenOutlines(outlines []opml.Outline) []opml.Outline {
	var out []opml.Outline
	for _, outline := range outlines {
		if outline.XMLURL != "" {
			out = append(out, outline)
			continue
		}
		out = append(out, flattenOutlines(outline.Outlines)...)
	}
	return out
}
