package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"risible/backend/internal/model"
	"risible/backend/internal/repository"
	"risible/backend/internal/repository/testutil"
)

func TestFeedRepository_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)
	ctx := context.Background()

	categoryID := testutil.SeedCategory(t, database, "Tech", "#FF6B6B", 0)
	nickname := "Daily"

	created, err := repo.Create(ctx, model.Feed{
		CategoryID:    &categoryID,
		Title:         "Example",
		URL:           "https://example.com/rss",
		Nickname:      &nickname,
		NotifyEnabled: true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Example", got.Title)
	require.Equal(t, "https://example.com/rss", got.URL)
	require.NotNil(t, got.CategoryID)
	require.Equal(t, categoryID, *got.CategoryID)
	require.NotNil(t, got.Nickname)
	require.Equal(t, "Daily", *got.Nickname)
	require.True(t, got.NotifyEnabled)
	require.False(t, got.Paused)
	require.Nil(t, got.LastSyncedAt)
}

func TestFeedRepository_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)

	_, err := repo.GetByID(context.Background(), 12345)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFeedRepository_FindByURL(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)
	ctx := context.Background()

	id := testutil.SeedFeed(t, database, model.Feed{Title: "A", URL: "https://a.test/rss"})

	found, err := repo.FindByURL(ctx, "https://a.test/rss")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, id, found.ID)

	missing, err := repo.FindByURL(ctx, "https://nowhere.test/rss")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestFeedRepository_List_FilterByCategory(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)
	ctx := context.Background()

	categoryID := testutil.SeedCategory(t, database, "News", "", 0)
	testutil.SeedFeed(t, database, model.Feed{Title: "In", URL: "https://in.test/rss", CategoryID: &categoryID})
	testutil.SeedFeed(t, database, model.Feed{Title: "Out", URL: "https://out.test/rss"})

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := repo.List(ctx, &categoryID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "In", filtered[0].Title)
}

func TestFeedRepository_GetByIDs(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)
	ctx := context.Background()

	a := testutil.SeedFeed(t, database, model.Feed{Title: "A", URL: "https://a.test/rss"})
	testutil.SeedFeed(t, database, model.Feed{Title: "B", URL: "https://b.test/rss"})

	feeds, err := repo.GetByIDs(ctx, []int64{a})
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	require.Equal(t, "A", feeds[0].Title)

	none, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestFeedRepository_ListDue(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)
	ctx := context.Background()
	now := time.Now().UTC()

	// Never synced: always due.
	testutil.SeedFeed(t, database, model.Feed{Title: "fresh", URL: "https://fresh.test/rss"})

	// Synced long ago: due under the default interval.
	stale := now.Add(-2 * time.Hour)
	testutil.SeedFeed(t, database, model.Feed{Title: "stale", URL: "https://stale.test/rss", LastSyncedAt: &stale})

	// Synced just now: not due.
	recent := now.Add(-time.Minute)
	testutil.SeedFeed(t, database, model.Feed{Title: "recent", URL: "https://recent.test/rss", LastSyncedAt: &recent})

	// Custom short interval makes a recently synced feed due again.
	shortInterval := 30
	testutil.SeedFeed(t, database, model.Feed{Title: "custom", URL: "https://custom.test/rss", LastSyncedAt: &recent, RefreshIntervalSeconds: &shortInterval})

	// Paused feeds are never due.
	testutil.SeedFeed(t, database, model.Feed{Title: "paused", URL: "https://paused.test/rss", Paused: true})

	due, err := repo.ListDue(ctx, now, 3600)
	require.NoError(t, err)

	titles := make([]string, 0, len(due))
	for _, feed := range due {
		titles = append(titles, feed.Title)
	}
	require.ElementsMatch(t, []string{"fresh", "stale", "custom"}, titles)
}

func TestFeedRepository_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)
	ctx := context.Background()

	id := testutil.SeedFeed(t, database, model.Feed{Title: "Old", URL: "https://u.test/rss", NotifyEnabled: true})

	feed, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	interval := 600
	feed.Title = "New"
	feed.RefreshIntervalSeconds = &interval
	feed.Paused = true

	updated, err := repo.Update(ctx, feed)
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "New", got.Title)
	require.NotNil(t, got.RefreshIntervalSeconds)
	require.Equal(t, 600, *got.RefreshIntervalSeconds)
	require.True(t, got.Paused)
}

func TestFeedRepository_Update_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)

	_, err := repo.Update(context.Background(), model.Feed{ID: 999, Title: "x"})
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFeedRepository_UpdateTitleAndLastSynced(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(database)
	ctx := context.Background()

	id := testutil.SeedFeed(t, database, model.Feed{Title: "Loading...", URL: "https://t.test/rss"})

	require.NoError(t, repo.UpdateTitle(ctx, id, "Real Title"))

	syncedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastSyncedAt(ctx, id, syncedAt))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Real Title", got.Title)
	require.NotNil(t, got.LastSyncedAt)
	require.True(t, got.LastSyncedAt.Equal(syncedAt))
}

func TestFeedRepository_Delete_CascadesItems(t *testing.T) {
	database := testutil.NewTestDB(t)
	feedRepo := repository.NewFeedRepository(database)
	itemRepo := repository.NewItemRepository(database)
	ctx := context.Background()

	id := testutil.SeedFeed(t, database, model.Feed{Title: "gone", URL: "https://gone.test/rss"})
	testutil.SeedItem(t, database, model.Item{FeedID: id, Title: "item"})

	require.NoError(t, feedRepo.Delete(ctx, id))

	count, err := itemRepo.CountByFeed(ctx, id)
	require.NoError(t, err)
	require.Zero(t, count)

	require.ErrorIs(t, feedRepo.Delete(ctx, id), sql.ErrNoRows)
}
