package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackingDate(t *testing.T) {
	tests := []struct {
		name     string
		now      string
		expected string
	}{
		{
			name:     "Afternoon Stays Same Day",
			now:      "2025-03-10T15:00:00-05:00",
			expected: "2025-03-10",
		},
		{
			name:     "Just After Midnight Counts As Previous Day",
			now:      "2025-03-11T01:30:00-05:00",
			expected: "2025-03-10",
		},
		{
			name:     "Three AM Starts New Day",
			now:      "2025-03-11T03:00:00-05:00",
			expected: "2025-03-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.Parse(time.RFC3339, tt.now)
			assert.NoError(t, err)

			date := TrackingDate(now)
			assert.Equal(t, tt.expected, date.Format("2006-01-02"))
		})
	}
}

func TestTrackingBounds(t *testing.T) {
	now, err := time.Parse(time.RFC3339, "2025-03-10T15:00:00-05:00")
	assert.NoError(t, err)

	start, end := TrackingBounds(now)

	assert.Equal(t, 3, start.Hour())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.True(t, start.Before(now))
	assert.True(t, end.After(now))
}
