package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"monday", time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC), "2025-01-06"},
		{"wednesday", time.Date(2025, 1, 8, 23, 59, 0, 0, time.UTC), "2025-01-06"},
		{"sunday", time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC), "2025-01-06"},
		{"across month", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "2025-02-24"},
		{"converted to utc", time.Date(2025, 1, 6, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)), "2024-12-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStartString(tt.now))
			assert.Equal(t, time.Monday, WeekStart(tt.now).Weekday())
		})
	}
}

func TestWeekEndString(t *testing.T) {
	assert.Equal(t, "2025-01-12", WeekEndString("2025-01-06"))
	assert.Equal(t, "not-a-date", WeekEndString("not-a-date"))
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2025-01-06"))
	assert.False(t, IsDate("2025-13-01"))
	assert.False(t, IsDate("06/01/2025"))
	assert.False(t, IsDate(""))
}
