package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"risible/backend/internal/config"
	"risible/backend/internal/db"
	"risible/backend/internal/fetcher"
	"risible/backend/internal/handler"
	internalhttp "risible/backend/internal/http"
	"risible/backend/internal/network"
	"risible/backend/internal/repository"
	"risible/backend/internal/scheduler"
	"risible/backend/internal/service"
	"risible/backend/pkg/logger"
	"risible/backend/pkg/snowflake"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	database, err := sql.Open("sqlite", cfg.DBPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()
	database.SetMaxOpenConns(1)

	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	categoryRepo := repository.NewCategoryRepository(database)
	feedRepo := repository.NewFeedRepository(database)
	itemRepo := repository.NewItemRepository(database)
	settingsRepo := repository.NewSettingsRepository(database)

	var proxyProvider network.ProxyProvider
	if cfg.ProxyURL != "" {
		proxyProvider = &network.StaticProxyProvider{URL: cfg.ProxyURL}
	}
	clients := network.NewClientFactory(proxyProvider)

	feedFetcher := fetcher.New(clients, fetcher.Options{
		RequestTimeout:  cfg.RequestTimeout,
		OverallTimeout:  cfg.FeedTimeout,
		HostMinInterval: cfg.HostMinInterval,
	})

	settingsService := service.NewSettingsService(settingsRepo)
	syncService := service.NewSyncService(feedRepo, itemRepo, settingsService, feedFetcher, service.SyncOptions{
		MergePrefix:   cfg.MergePrefix,
		RetentionCap:  cfg.RetentionCap,
		MaxConcurrent: cfg.MaxConcurrent,
	})
	categoryService := service.NewCategoryService(categoryRepo)
	feedService := service.NewFeedService(feedRepo, itemRepo, categoryRepo, feedFetcher, cfg.MergePrefix)
	itemService := service.NewItemService(itemRepo, feedRepo)
	opmlService := service.NewOPMLService(categoryRepo, feedRepo, syncService)
	seedService := service.NewSeedService(categoryRepo, feedRepo, syncService)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := seedService.SeedIfEmpty(seedCtx); err != nil {
		logger.Warn("seeding failed", "module", "main", "error", err)
	}
	cancelSeed()

	e := internalhttp.NewRouter(
		handler.NewCategoryHandler(categoryService),
		handler.NewFeedHandler(feedService),
		handler.NewItemHandler(itemService),
		handler.NewSyncHandler(syncService),
		handler.NewSettingsHandler(settingsService),
		handler.NewDiscoverHandler(),
		handler.NewOPMLHandler(opmlService),
		cfg.StaticDir,
	)

	sched := scheduler.New(syncService, settingsService, cfg.SchedulerTick)
	sched.Start()
	defer sched.Stop()

	go func() {
		logger.Info("server started", "module", "main", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil {
			logger.Info("server stopped", "module", "main", "reason", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
