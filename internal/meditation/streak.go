package meditation

import "time"

// StreakState is the slice of user columns the streak bookkeeping touches.
type StreakState struct {
	CurrentStreak      int
	LongestStreak      int
	LastMeditationDate *time.Time
	TotalSessions      int
	TotalMinutes       int
}

// Advance applies one completed session to the streak state. A gap of more
// than one calendar day breaks the streak.
func (s StreakState) Advance(completedAt time.Time, minutes int) StreakState {
	today := truncateToDay(completedAt)

	if s.LastMeditationDate == nil {
		s.CurrentStreak = 1
	} else {
		daysDiff := int(today.Sub(truncateToDay(*s.LastMeditationDate)).Hours() / 24)
		switch {
		case daysDiff == 0:
			// Second session the same day keeps the streak as is
		case daysDiff == 1:
			s.CurrentStreak++
		default:
			s.CurrentStreak = 1
		}
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	s.LastMeditationDate = &today
	s.TotalSessions++
	s.TotalMinutes += minutes

	return s
}

var streakMilestones = []int{3, 7, 14, 30, 60, 100}

// ReachedMilestone returns the streak milestone newly crossed by this
// update, or 0 when none was.
func ReachedMilestone(before, after StreakState) int {
	for _, m := range streakMilestones {
		if before.CurrentStreak < m && after.CurrentStreak >= m {
			return m
		}
	}
	return 0
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
