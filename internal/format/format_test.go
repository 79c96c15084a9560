package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDates(t *testing.T) {
	d := time.Date(2025, 1, 16, 9, 30, 0, 0, time.UTC)
	require.Equal(t, "January 16, 2025", FmtDate(d))
	require.Equal(t, "Jan 16, 2025", FmtShortDate(d))
	require.Equal(t, "2025-01-16", FmtISODate(d))
	require.Empty(t, FmtDate(time.Time{}))
}

func TestNumbers(t *testing.T) {
	require.Equal(t, "4.9", FmtRating(4.87))
	require.Equal(t, "5.0", FmtRating(5))
	require.Equal(t, "239", FmtCount(239))
	require.Equal(t, "12,345", FmtCount(12345))
	require.Equal(t, "-1,000,000", FmtCount(-1000000))
	require.Equal(t, "1 min read", FmtReadingTime(0))
	require.Equal(t, "12 min read", FmtReadingTime(12))
}

func TestStars(t *testing.T) {
	require.Equal(t, []bool{true, true, true, true, true}, Stars(4.87))
	require.Equal(t, []bool{true, true, true, true, false}, Stars(4.2))
}
