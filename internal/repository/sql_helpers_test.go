package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNullableHelpers(t *testing.T) {
	require.Nil(t, nullableInt64(nil))
	require.Nil(t, nullableInt(nil))
	require.Nil(t, nullableString(nil))
	require.Nil(t, nullableTime(nil))

	id := int64(7)
	require.Equal(t, int64(7), nullableInt64(&id))

	n := 42
	require.Equal(t, 42, nullableInt(&n))

	s := "hello"
	require.Equal(t, "hello", nullableString(&s))

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "2026-08-01T12:00:00.000000000Z", nullableTime(&at))
}

func TestBoolToInt(t *testing.T) {
	require.Equal(t, 1, boolToInt(true))
	require.Equal(t, 0, boolToInt(false))
}

func TestTimeRoundTrip(t *testing.T) {
	original := time.Date(2026, 8, 1, 12, 30, 45, 123456789, time.UTC)
	parsed, err := parseTime(formatTime(original))
	require.NoError(t, err)
	require.True(t, parsed.Equal(original))

	// Non-UTC input normalizes to UTC on format.
	loc := time.FixedZone("X", 3*3600)
	shifted := original.In(loc)
	parsed, err = parseTime(formatTime(shifted))
	require.NoError(t, err)
	require.True(t, parsed.Equal(original))
}

func TestFormatTime_TextOrderMatchesTimeOrder(t *testing.T) {
	// Lexicographic order of the stored text must follow the timestamps,
	// fractional seconds included.
	whole := time.Date(2026, 8, 1, 12, 30, 45, 0, time.UTC)
	fractional := whole.Add(500 * time.Millisecond)
	next := whole.Add(time.Second)

	require.Less(t, formatTime(whole), formatTime(fractional))
	require.Less(t, formatTime(fractional), formatTime(next))
}
