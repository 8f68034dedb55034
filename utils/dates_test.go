package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKey(t *testing.T) {
	at := time.Date(2025, 3, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-05", DayKey(at))
}

func TestWeekdayName(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "monday", WeekdayName(monday))
	assert.Equal(t, "sunday", WeekdayName(monday.AddDate(0, 0, 6)))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-03-10"))
	assert.False(t, ValidDate("2025-3-10"))
	assert.False(t, ValidDate("10-03-2025"))
	assert.False(t, ValidDate(""))
	assert.False(t, ValidDate("2025-02-30"))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	night := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(morning, nextDay))
}
