// Package dateutil parses the date formats that occur in RSS and Atom feeds.
package dateutil

import (
	"strings"
	"time"
)

// ISO-8601 layouts first (Atom), then RFC-822 style layouts (RSS). Month and
// day names are the invariant English ones regardless of process locale.
var layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
}

// ParseFeedDate parses a feed date string into a UTC timestamp. The second
// return value reports whether any known layout matched; callers are expected
// to fall back to the current time rather than fail.
func ParseFeedDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
