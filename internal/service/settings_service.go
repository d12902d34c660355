//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"strconv"

	"risible/backend/internal/repository"
	"risible/backend/pkg/logger"
)

const (
	settingDefaultRefreshInterval = "default_refresh_interval_seconds"
	settingGlobalPause            = "global_pause"

	// DefaultRefreshIntervalSeconds applies to feeds without a custom
	// interval when nothing has been configured yet.
	DefaultRefreshIntervalSeconds = 3600
)

// SettingsService reads and writes the user-tunable knobs the sync scheduler
// consumes. The core does not own the trigger policy; it only exposes the
// values it is driven by.
type SettingsService interface {
	DefaultRefreshInterval(ctx context.Context) int
	SetDefaultRefreshInterval(ctx context.Context, seconds int) error
	GlobalPause(ctx context.Context) bool
	SetGlobalPause(ctx context.Context, paused bool) error
}

type settingsService struct {
	settings repository.SettingsRepository
}

func NewSettingsService(settings repository.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) DefaultRefreshInterval(ctx context.Context) int {
	raw, err := s.settings.Get(ctx, settingDefaultRefreshInterval)
	if err != nil {
		logger.Warn("read default refresh interval failed", "module", "service", "resource", "settings", "error", err)
		return DefaultRefreshIntervalSeconds
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return DefaultRefreshIntervalSeconds
	}
	return seconds
}

func (s *settingsService) SetDefaultRefreshInterval(ctx context.Context, seconds int) error {
	if seconds <= 0 {
		return ErrInvalid
	}
	return s.settings.Set(ctx, settingDefaultRefreshInterval, strconv.Itoa(seconds))
}

func (s *settingsService) GlobalPause(ctx context.Context) bool {
	raw, err := s.settings.Get(ctx, settingGlobalPause)
	if err != nil {
		logger.Warn("read global pause failed", "module", "service", "resource", "settings", "error", err)
		return false
	}
	return raw == "1" || raw == "true"
}

func (s *settingsService) SetGlobalPause(ctx context.Context, paused bool) error {
	value := "0"
	if paused {
		value = "1"
	}
	return s.settings.Set(ctx, settingGlobalPause, value)
}
