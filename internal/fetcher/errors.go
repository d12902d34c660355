package fetcher

import (
	"errors"
	"fmt"
)

// The closed set of failure kinds a fetch can produce. Everything a remote
// feed can do wrong maps onto one of these; none of them is fatal to a sync
// pass.
var (
	ErrInvalidURL   = errors.New("invalid feed URL")
	ErrNoConnection = errors.New("no internet connection")
	ErrTimeout      = errors.New("feed request timed out")
	ErrCancelled    = errors.New("feed request cancelled")
	ErrNoData       = errors.New("no data received")
	ErrParsing      = errors.New("unable to parse feed")
)

// NetworkError wraps a transport failure that is none of the more specific
// kinds.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// IsFetchError reports whether err belongs to the fetch failure taxonomy.
func IsFetchError(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	for _, sentinel := range []error{ErrInvalidURL, ErrNoConnection, ErrTimeout, ErrCancelled, ErrNoData, ErrParsing} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Kind returns a stable machine-readable name for a fetch error.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, ErrNoConnection):
		return "no_connection"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrCancelled):
		return "cancelled"
	case errors.Is(err, ErrNoData):
		return "no_data"
	case errors.Is(err, ErrParsing):
		return "parsing"
	default:
		return "network"
	}
}

// Message returns the human-readable description shown for a fetch error.
func Message(err error) string {
	switch Kind(err) {
	case "invalid_url":
		return "Invalid feed URL"
	case "no_connection":
		return "No internet connection"
	case "timeout":
		return "Feed request timed out"
	case "cancelled":
		return "Feed refresh was cancelled"
	case "no_data":
		return "No data received from feed"
	case "parsing":
		return "Unable to parse feed — the feed format may not be supported"
	default:
		return "Network error while fetching feed"
	}
}
