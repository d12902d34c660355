//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"risible/backend/internal/fetcher"
	"risible/backend/internal/model"
	"risible/backend/internal/repository"
	"risible/backend/pkg/logger"
)

var ErrSyncInProgress = errors.New("sync already in progress")

// SyncStatus holds the current state of the sync engine.
type SyncStatus struct {
	IsSyncing    bool
	LastSyncedAt *time.Time
}

// SyncService refreshes subscribed feeds. One pass runs at a time; within a
// pass feeds are fetched concurrently under a bound, and one feed's failure
// never aborts the others.
type SyncService interface {
	SyncAll(ctx context.Context) error
	SyncCategory(ctx context.Context, categoryID int64) error
	SyncFeeds(ctx context.Context, feedIDs []int64) error
	SyncDue(ctx context.Context) error
	Errors() []model.SyncError
	DismissError(feedID int64)
	IsSyncing() bool
	Status() SyncStatus
}

// SyncOptions are the pass tunables; zero values take the product defaults.
type SyncOptions struct {
	MergePrefix   int
	RetentionCap  int
	MaxConcurrent int
}

type syncService struct {
	feeds    repository.FeedRepository
	items    repository.ItemRepository
	settings SettingsService
	fetcher  fetcher.Fetcher
	opts     SyncOptions

	mu           sync.Mutex
	isSyncing    bool
	lastSyncedAt *time.Time

	errMu    sync.Mutex
	errSlots map[int64]model.SyncError

	// storeMu serializes merges so two feeds' writes never interleave.
	storeMu sync.Mutex
}

func NewSyncService(feeds repository.FeedRepository, items repository.ItemRepository, settings SettingsService, fetch fetcher.Fetcher, opts SyncOptions) SyncService {
	if opts.MergePrefix <= 0 {
		opts.MergePrefix = 50
	}
	if opts.RetentionCap <= 0 {
		opts.RetentionCap = 100
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 8
	}
	return &syncService{
		feeds:    feeds,
		items:    items,
		settings: settings,
		fetcher:  fetch,
		opts:     opts,
		errSlots: make(map[int64]model.SyncError),
	}
}

func (s *syncService) SyncAll(ctx context.Context) error {
	feeds, err := s.feeds.List(ctx, nil)
	if err != nil {
		return err
	}
	return s.runPass(ctx, feeds)
}

func (s *syncService) SyncCategory(ctx context.Context, categoryID int64) error {
	feeds, err := s.feeds.List(ctx, &categoryID)
	if err != nil {
		return err
	}
	return s.runPass(ctx, feeds)
}

func (s *syncService) SyncFeeds(ctx context.Context, feedIDs []int64) error {
	if len(feedIDs) == 0 {
		return nil
	}
	feeds, err := s.feeds.GetByIDs(ctx, feedIDs)
	if err != nil {
		return err
	}
	return s.runPass(ctx, feeds)
}

// SyncDue refreshes only the feeds whose refresh interval has elapsed.
func (s *syncService) SyncDue(ctx context.Context) error {
	interval := DefaultRefreshIntervalSeconds
	if s.settings != nil {
		interval = s.settings.DefaultRefreshInterval(ctx)
	}
	feeds, err := s.feeds.ListDue(ctx, time.Now().UTC(), interval)
	if err != nil {
		return err
	}
	if len(feeds) == 0 {
		return nil
	}
	return s.runPass(ctx, feeds)
}

// runPass fetches the given feeds concurrently and merges each result.
// Paused feeds are skipped outright: no fetch, no error slot, no change.
func (s *syncService) runPass(ctx context.Context, feeds []model.Feed) error {
	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		return ErrSyncInProgress
	}
	s.isSyncing = true
	s.mu.Unlock()

	defer func() {
		now := time.Now().UTC()
		s.mu.Lock()
		s.isSyncing = false
		s.lastSyncedAt = &now
		s.mu.Unlock()
	}()

	s.clearErrors(feeds)

	passID := uuid.NewString()
	logger.Info("sync pass started", "module", "service", "action", "sync", "result", "ok", "pass_id", passID, "feeds", len(feeds))

	sem := semaphore.NewWeighted(int64(s.opts.MaxConcurrent))
	var wg sync.WaitGroup

	for _, feed := range feeds {
		if feed.Paused {
			logger.Debug("feed paused, skipped", "module", "service", "action", "sync", "result", "skipped", "pass_id", passID, "feed_id", feed.ID)
			continue
		}

		feed := feed
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				cause := fetcher.ErrCancelled
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					cause = fetcher.ErrTimeout
				}
				s.recordError(feed, cause)
				return
			}
			defer sem.Release(1)

			s.syncFeed(ctx, passID, feed)
		}()
	}

	wg.Wait()
	logger.Info("sync pass completed", "module", "service", "action", "sync", "result", "ok", "pass_id", passID, "failed", len(s.Errors()))
	return nil
}

func (s *syncService) syncFeed(ctx context.Context, passID string, feed model.Feed) {
	parsed, err := s.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		logger.Warn("feed sync failed", "module", "service", "action", "sync", "resource", "feed", "result", "failed", "pass_id", passID, "feed_id", feed.ID, "feed_title", feed.Title, "error", err)
		s.recordError(feed, err)
		return
	}

	// The fetch succeeded in full; the merge must not be torn apart by a
	// cancellation that arrives while rows are being written.
	mergeCtx := context.WithoutCancel(ctx)

	s.storeMu.Lock()
	added, err := s.merge(mergeCtx, feed, parsed)
	s.storeMu.Unlock()

	if err != nil {
		logger.Error("feed merge failed", "module", "service", "action", "sync", "resource", "feed", "result", "failed", "pass_id", passID, "feed_id", feed.ID, "error", err)
		s.recordError(feed, err)
		return
	}

	s.clearError(feed.ID)
	if added > 0 {
		logger.Info("feed synced", "module", "service", "action", "sync", "resource", "feed", "result", "ok", "pass_id", passID, "feed_id", feed.ID, "feed_title", feed.Title, "new", added)
	}
}

// merge applies one successful fetch to the store: title refresh, insert of
// the newest unseen items, then retention pruning. Re-merging identical
// content is a no-op.
func (s *syncService) merge(ctx context.Context, feed model.Feed, parsed *model.ParsedFeed) (int, error) {
	if title := strings.TrimSpace(parsed.Title); title != "" && title != feed.Title {
		if err := s.feeds.UpdateTitle(ctx, feed.ID, title); err != nil {
			return 0, err
		}
	}

	added, err := mergeParsedItems(ctx, s.items, feed.ID, parsed.Items, s.opts.MergePrefix)
	if err != nil {
		return added, err
	}

	if _, err := s.items.PruneToCap(ctx, feed.ID, s.opts.RetentionCap); err != nil {
		return added, err
	}

	return added, s.feeds.UpdateLastSyncedAt(ctx, feed.ID, time.Now().UTC())
}

// mergeParsedItems inserts the newest `prefix` parsed items that are not yet
// stored for the feed, keyed by (feed, link).
func mergeParsedItems(ctx context.Context, items repository.ItemRepository, feedID int64, parsed []model.ParsedItem, prefix int) (int, error) {
	if len(parsed) > prefix {
		parsed = parsed[:prefix]
	}

	added := 0
	for _, entry := range parsed {
		if entry.Link == "" {
			continue
		}
		exists, err := items.ExistsByLink(ctx, feedID, entry.Link)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}
		if _, err := items.Create(ctx, model.Item{
			FeedID:      feedID,
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
			ImageURL:    entry.ImageURL,
			PublishedAt: entry.PublishedAt,
		}); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Errors returns a snapshot of the current error report, ordered by feed title.
func (s *syncService) Errors() []model.SyncError {
	s.errMu.Lock()
	defer s.errMu.Unlock()

	out := make([]model.SyncError, 0, len(s.errSlots))
	for _, slot := range s.errSlots {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FeedTitle != out[j].FeedTitle {
			return out[i].FeedTitle < out[j].FeedTitle
		}
		return out[i].FeedID < out[j].FeedID
	})
	return out
}

// DismissError drops one feed's slot from the report.
func (s *syncService) DismissError(feedID int64) {
	s.errMu.Lock()
	delete(s.errSlots, feedID)
	s.errMu.Unlock()
}

func (s *syncService) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSyncing
}

func (s *syncService) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SyncStatus{IsSyncing: s.isSyncing, LastSyncedAt: s.lastSyncedAt}
}

func (s *syncService) recordError(feed model.Feed, err error) {
	s.errMu.Lock()
	s.errSlots[feed.ID] = model.SyncError{
		FeedID:    feed.ID,
		FeedTitle: feed.DisplayName(),
		FeedURL:   feed.URL,
		Kind:      fetcher.Kind(err),
		Message:   fetcher.Message(err),
		At:        time.Now().UTC(),
	}
	s.errMu.Unlock()
}

func (s *syncService) clearError(feedID int64) {
	s.errMu.Lock()
	delete(s.errSlots, feedID)
	s.errMu.Unlock()
}

// clearErrors resets the slots of every feed targeted by the starting pass.
func (s *syncService) clearErrors(feeds []model.Feed) {
	s.errMu.Lock()
	for _, feed := range feeds {
		delete(s.errSlots, feed.ID)
	}
	s.errMu.Unlock()
}
