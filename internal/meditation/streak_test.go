package meditation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreakAdvance(t *testing.T) {
	yesterday := day("2025-03-09")
	lastWeek := day("2025-03-02")

	tests := []struct {
		name            string
		state           StreakState
		completedAt     time.Time
		expectedStreak  int
		expectedLongest int
	}{
		{
			name:            "First Session Starts Streak",
			state:           StreakState{},
			completedAt:     day("2025-03-10"),
			expectedStreak:  1,
			expectedLongest: 1,
		},
		{
			name:            "Consecutive Day Extends Streak",
			state:           StreakState{CurrentStreak: 4, LongestStreak: 4, LastMeditationDate: &yesterday},
			completedAt:     day("2025-03-10"),
			expectedStreak:  5,
			expectedLongest: 5,
		},
		{
			name:            "Same Day Keeps Streak",
			state:           StreakState{CurrentStreak: 4, LongestStreak: 6, LastMeditationDate: &yesterday},
			completedAt:     day("2025-03-09"),
			expectedStreak:  4,
			expectedLongest: 6,
		},
		{
			name:            "Gap Breaks Streak",
			state:           StreakState{CurrentStreak: 9, LongestStreak: 9, LastMeditationDate: &lastWeek},
			completedAt:     day("2025-03-10"),
			expectedStreak:  1,
			expectedLongest: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after := tt.state.Advance(tt.completedAt, 10)
			assert.Equal(t, tt.expectedStreak, after.CurrentStreak)
			assert.Equal(t, tt.expectedLongest, after.LongestStreak)
			assert.Equal(t, tt.state.TotalSessions+1, after.TotalSessions)
			assert.Equal(t, tt.state.TotalMinutes+10, after.TotalMinutes)
		})
	}
}

func TestReachedMilestone(t *testing.T) {
	before := StreakState{CurrentStreak: 6}
	after := StreakState{CurrentStreak: 7}
	assert.Equal(t, 7, ReachedMilestone(before, after))

	assert.Equal(t, 0, ReachedMilestone(StreakState{CurrentStreak: 7}, StreakState{CurrentStreak: 8}))
	assert.Equal(t, 3, ReachedMilestone(StreakState{}, StreakState{CurrentStreak: 3}))
}
