package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		tolerance              float64
	}{
		{
			name: "Same Point",
			lat1: 42.3703, lon1: -87.9023,
			lat2: 42.3703, lon2: -87.9023,
			expected:  0,
			tolerance: 0.01,
		},
		{
			name: "Across A Parking Lot",
			lat1: 42.3703, lon1: -87.9023,
			lat2: 42.3712, lon2: -87.9023,
			expected:  100,
			tolerance: 2,
		},
		{
			name: "Chicago To Milwaukee",
			lat1: 41.8781, lon1: -87.6298,
			lat2: 43.0389, lon2: -87.9065,
			expected:  131000,
			tolerance: 2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, actual, tt.tolerance)
		})
	}
}
