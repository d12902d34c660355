package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"risible/backend/internal/service"
	"risible/backend/pkg/logger"
)

// Scheduler periodically triggers a sync pass over due feeds. The sync
// engine owns all the refresh semantics; the scheduler is only the clock.
type Scheduler struct {
	sync     service.SyncService
	settings service.SettingsService
	tick     time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup

	mu         sync.Mutex
	cancelFunc context.CancelFunc
}

func New(syncService service.SyncService, settings service.SettingsService, tick time.Duration) *Scheduler {
	return &Scheduler{
		sync:     syncService,
		settings: settings,
		tick:     tick,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "tick", s.tick)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.syncDue()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.syncDue()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) syncDue() {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if s.settings != nil && s.settings.GlobalPause(ctx) {
		logger.Debug("global pause active, tick skipped", "module", "scheduler")
		return
	}

	if err := s.sync.SyncDue(ctx); err != nil {
		if errors.Is(err, service.ErrSyncInProgress) || ctx.Err() != nil {
			return
		}
		logger.Error("scheduled sync failed", "module", "scheduler", "error", err)
	}
}
