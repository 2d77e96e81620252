package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	at := time.Date(2024, 2, 15, 10, 30, 45, 0, time.UTC)
	assert.Equal(t, "2024-02-15", DateKey(at))

	// Single-digit months and days must stay zero-padded, or lexicographic
	// comparison breaks.
	assert.Equal(t, "2024-03-05", DateKey(time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)))
}

func TestDateKeyOrdering(t *testing.T) {
	earlier := DateKey(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC))
	later := DateKey(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, earlier < later)
}

func TestSlotKey(t *testing.T) {
	at := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-15 10:00", SlotKey(at))

	// Seconds are truncated; minutes are not.
	assert.Equal(t, "2024-02-15 10:00", SlotKey(at.Add(30*time.Second)))
	assert.Equal(t, "2024-02-15 10:01", SlotKey(at.Add(time.Minute)))
}

func TestFormatTimeRange(t *testing.T) {
	start := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 15, 11, 30, 0, 0, time.UTC)
	assert.Equal(t, "10:00 - 11:30", FormatTimeRange(start, end))
}

func TestParseDateKey(t *testing.T) {
	parsed, err := ParseDateKey("2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDateKey("15/02/2024")
	assert.Error(t, err)
}

func TestBeginningOfDay(t *testing.T) {
	at := time.Date(2024, 2, 15, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), BeginningOfDay(at))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 2, 15, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 18, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
}
