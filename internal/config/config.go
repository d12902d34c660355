package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Addr      string
	DBPath    string
	LogLevel  string
	ProxyURL  string
	StaticDir string

	// Feed pipeline tunables. These are product defaults, not protocol
	// guarantees; every one can be overridden from the environment.
	MergePrefix     int           // newest parsed items considered per fetch
	RetentionCap    int           // items kept per feed after merge
	MaxConcurrent   int           // simultaneous in-flight fetches per pass
	RequestTimeout  time.Duration // single HTTP request
	FeedTimeout     time.Duration // whole fetch+parse budget per feed
	HostMinInterval time.Duration // politeness gap between hits on one host
	SchedulerTick   time.Duration // how often due feeds are checked
}

func Load() Config {
	return Config{
		Addr:            getString("RISIBLE_ADDR", ":8080"),
		DBPath:          filepath.Clean(getString("RISIBLE_DB_PATH", "./data/risible.db")),
		LogLevel:        getString("RISIBLE_LOG_LEVEL", "info"),
		ProxyURL:        getString("RISIBLE_PROXY_URL", ""),
		StaticDir:       getString("RISIBLE_STATIC_DIR", ""),
		MergePrefix:     getInt("RISIBLE_MERGE_PREFIX", 50),
		RetentionCap:    getInt("RISIBLE_RETENTION_CAP", 100),
		MaxConcurrent:   getInt("RISIBLE_MAX_CONCURRENT", 8),
		RequestTimeout:  getDuration("RISIBLE_REQUEST_TIMEOUT", 20*time.Second),
		FeedTimeout:     getDuration("RISIBLE_FEED_TIMEOUT", 30*time.Second),
		HostMinInterval: getDuration("RISIBLE_HOST_MIN_INTERVAL", 0),
		SchedulerTick:   getDuration("RISIBLE_SCHEDULER_TICK", time.Minute),
	}
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
