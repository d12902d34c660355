package service

import (
	"context"

	"risible/backend/internal/model"
	"risible/backend/internal/repository"
	"risible/backend/pkg/logger"
)

// CuratedFeed is a discoverable subscription suggestion shipped with the
// product.
type CuratedFeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
}

var curatedFeeds = []CuratedFeed{
	{Name: "BBC News", Description: "World news from the BBC", URL: "http://feeds.bbci.co.uk/news/rss.xml", Icon: "globe"},
	{Name: "Semafor", Description: "Global news with diverse perspectives", URL: "https://www.semafor.com/rss", Icon: "newspaper"},
	{Name: "TechCrunch", Description: "Technology news and analysis", URL: "https://techcrunch.com/feed/", Icon: "laptop"},
	{Name: "The Verge", Description: "Technology, science, and culture", URL: "https://www.theverge.com/rss/index.xml", Icon: "phone"},
	{Name: "Hacker News", Description: "Tech news and discussions", URL: "https://hnrss.org/frontpage", Icon: "terminal"},
	{Name: "NASA", Description: "Space exploration news", URL: "https://www.nasa.gov/rss/dyn/breaking_news.rss", Icon: "moon"},
	{Name: "The Guardian", Description: "International news and opinion", URL: "https://www.theguardian.com/world/rss", Icon: "newspaper"},
	{Name: "Wired", Description: "Tech, science, and culture insights", URL: "https://www.wired.com/feed/rss", Icon: "bolt"},
	{Name: "Ars Technica", Description: "In-depth tech analysis", URL: "https://feeds.arstechnica.com/arstechnica/index", Icon: "cpu"},
	{Name: "NPR News", Description: "U.S. and world news", URL: "https://feeds.npr.org/1001/rss.xml", Icon: "radio"},
	{Name: "MIT Technology Review", Description: "Emerging technology insights", URL: "https://www.technologyreview.com/feed/", Icon: "lightbulb"},
	{Name: "The Atlantic", Description: "Politics, culture, and ideas", URL: "https://www.theatlantic.com/feed/all/", Icon: "book"},
}

// CuratedFeeds returns the built-in discovery catalog.
func CuratedFeeds() []CuratedFeed {
	out := make([]CuratedFeed, len(curatedFeeds))
	copy(out, curatedFeeds)
	return out
}

// SeedService fills an empty database with starter categories and
// subscriptions on first run.
type SeedService interface {
	SeedIfEmpty(ctx context.Context) (bool, error)
}

type seedService struct {
	categories repository.CategoryRepository
	feeds      repository.FeedRepository
	sync       SyncService
}

func NewSeedService(categories repository.CategoryRepository, feeds repository.FeedRepository, sync SyncService) SeedService {
	return &seedService{categories: categories, feeds: feeds, sync: sync}
}

var seedCategories = []model.Category{
	{Name: "Technology", Color: "#FF6B6B", SortOrder: 0},
	{Name: "News", Color: "#4ECDC4", SortOrder: 1},
	{Name: "Science", Color: "#45B7D1", SortOrder: 2},
	{Name: "Design", Color: "#F7B731", SortOrder: 3},
}

var seedFeeds = []struct {
	url      string
	title    string
	category string
}{
	{"https://feeds.arstechnica.com/arstechnica/index", "Ars Technica", "Technology"},
	{"https://www.theverge.com/rss/index.xml", "The Verge", "Technology"},
	{"https://feeds.bloomberg.com/markets/news.rss", "Bloomberg Markets", "News"},
	{"https://feeds.bbci.co.uk/news/rss.xml", "BBC News", "News"},
	{"https://www.nature.com/nature/current_issue/rss", "Nature", "Science"},
	{"https://feeds.arstechnica.com/arstechnica/science", "Ars Technica Science", "Science"},
	{"https://www.designernews.co/rss", "Designer News", "Design"},
	{"https://feeds.designmodo.com/designmodo/", "Design Modo", "Design"},
}

// SeedIfEmpty inserts the starter set when no category exists yet and kicks
// off a first sync pass over the new subscriptions. Returns whether seeding
// ran.
func (s *seedService) SeedIfEmpty(ctx context.Context) (bool, error) {
	existing, err := s.categories.List(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	categoryIDs := make(map[string]int64, len(seedCategories))
	for _, category := range seedCategories {
		created, err := s.categories.Create(ctx, category)
		if err != nil {
			return false, err
		}
		categoryIDs[created.Name] = created.ID
	}

	var feedIDs []int64
	for _, seed := range seedFeeds {
		feed := model.Feed{
			Title:         seed.title,
			URL:           seed.url,
			NotifyEnabled: true,
		}
		if id, ok := categoryIDs[seed.category]; ok {
			feed.CategoryID = &id
		}
		created, err := s.feeds.Create(ctx, feed)
		if err != nil {
			return false, err
		}
		feedIDs = append(feedIDs, created.ID)
	}

	logger.Info("database seeded", "module", "service", "action", "seed", "result", "ok", "categories", len(seedCategories), "feeds", len(feedIDs))

	if s.sync != nil {
		if err := s.sync.SyncFeeds(ctx, feedIDs); err != nil {
			logger.Warn("post-seed sync failed", "module", "service", "action", "seed", "result", "failed", "error", err)
		}
	}
	return true, nil
}
