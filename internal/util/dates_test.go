package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	ts := time.Date(2026, 3, 5, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2026-03-05", DateString(ts))
}

func TestParseDateRoundTrips(t *testing.T) {
	parsed, err := ParseDate("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", DateString(parsed))
	assert.Equal(t, 0, parsed.Hour())

	_, err = ParseDate("05/03/2026")
	assert.Error(t, err)
}

func TestDayGap(t *testing.T) {
	tests := []struct {
		earlier string
		later   string
		want    int
	}{
		{"2026-03-01", "2026-03-02", 1},
		{"2026-03-01", "2026-03-01", 0},
		{"2026-03-01", "2026-03-04", 3},
		{"2026-02-28", "2026-03-01", 1},
		{"2025-12-31", "2026-01-01", 1},
		{"2026-03-02", "2026-03-01", -1},
		{"garbage", "2026-03-01", -1},
		{"2026-03-01", "garbage", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DayGap(tt.earlier, tt.later), "%s -> %s", tt.earlier, tt.later)
	}
}

func TestDayGapUnaffectedByDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	// 2026-03-08 美东进入夏令时，当天只有23小时
	assert.Equal(t, 1, DayGap("2026-03-07", "2026-03-08"))
	assert.Equal(t, 1, DayGap("2026-03-08", "2026-03-09"))
	assert.Equal(t, 2, DayGap("2026-03-07", "2026-03-09"))

	// 2026-11-01 退出夏令时，当天有25小时
	assert.Equal(t, 1, DayGap("2026-10-31", "2026-11-01"))
	assert.Equal(t, 1, DayGap("2026-11-01", "2026-11-02"))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 5, 17, 30, 12, 999, time.Local)
	start := StartOfDay(ts)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local), start)
}
