package scheduler_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"risible/backend/internal/scheduler"
	"risible/backend/internal/service/mock"
)

func TestScheduler_TriggersSyncDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncService := mock.NewMockSyncService(ctrl)
	settings := mock.NewMockSettingsService(ctrl)

	settings.EXPECT().GlobalPause(gomock.Any()).Return(false).AnyTimes()
	// Fires immediately on Start, then on every tick.
	syncService.EXPECT().SyncDue(gomock.Any()).Return(nil).MinTimes(1)

	s := scheduler.New(syncService, settings, 50*time.Millisecond)
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()
}

func TestScheduler_GlobalPauseSkipsTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncService := mock.NewMockSyncService(ctrl)
	settings := mock.NewMockSettingsService(ctrl)

	settings.EXPECT().GlobalPause(gomock.Any()).Return(true).AnyTimes()
	// SyncDue must never run while globally paused; no expectation is set.

	s := scheduler.New(syncService, settings, 50*time.Millisecond)
	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()
}
