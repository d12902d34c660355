package urlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripFragment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://example.com/rss#latest", "https://example.com/rss"},
		{"https://example.com/rss?page=2#top", "https://example.com/rss?page=2"},
		{"https://example.com/rss", "https://example.com/rss"},
		{"  https://example.com/rss  ", "https://example.com/rss"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, StripFragment(tc.input), "input %q", tc.input)
	}
}
