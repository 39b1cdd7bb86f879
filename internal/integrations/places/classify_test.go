package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFastFood(t *testing.T) {
	tests := []struct {
		name     string
		venue    string
		types    []string
		expected bool
	}{
		{
			name:     "known chain",
			venue:    "McDonalds Downtown",
			types:    []string{"restaurant", "food"},
			expected: true,
		},
		{
			name:     "chain with punctuation stripped",
			venue:    "Raising Canes Chicken Fingers",
			types:    []string{"restaurant"},
			expected: true,
		},
		{
			name:     "ice cream shop by keyword",
			venue:    "Frosty's Ice Cream Parlor",
			types:    []string{"food", "store"},
			expected: true,
		},
		{
			name:     "donut shop by keyword",
			venue:    "Sunrise Doughnut Co",
			types:    []string{"bakery"},
			expected: true,
		},
		{
			name:     "generic restaurant type",
			venue:    "Chez Laurent",
			types:    []string{"restaurant", "point_of_interest"},
			expected: true,
		},
		{
			name:     "not food related",
			venue:    "First National Bank",
			types:    []string{"bank", "finance"},
			expected: false,
		},
		{
			name:     "hardware store named grill",
			venue:    "Grill & Garden Hardware",
			types:    []string{"hardware_store"},
			expected: false,
		},
		{
			name:     "empty types",
			venue:    "Burger Palace",
			types:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFastFood(tt.venue, tt.types))
		})
	}
}
