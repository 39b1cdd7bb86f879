package models

import "time"

const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionAbandoned  = "abandoned"
)

type MeditationSession struct {
	ID               int        `json:"id" db:"id"`
	UserID           int        `json:"-" db:"user_id"`
	ChallengeID      *int       `json:"challenge_id" db:"challenge_id"`
	StartTime        time.Time  `json:"start_time" db:"start_time"`
	EndTime          *time.Time `json:"end_time" db:"end_time"`
	Duration         int        `json:"duration" db:"duration"`
	MeditationType   string     `json:"meditation_type" db:"meditation_type"`
	Status           string     `json:"status" db:"status"`
	Notes            *string    `json:"notes" db:"notes"`
	StressLevelStart *float64   `json:"stress_level_start" db:"stress_level_start"`
	StressLevelEnd   *float64   `json:"stress_level_end" db:"stress_level_end"`
	StressReduction  *float64   `json:"stress_reduction" db:"stress_reduction"`
}

type StartSessionRequest struct {
	Duration         int      `json:"duration" binding:"required"`
	MeditationType   string   `json:"meditation_type" binding:"required"`
	ChallengeID      *int     `json:"challenge_id"`
	StressLevelStart *float64 `json:"stress_level_start"`
}

type CompleteSessionRequest struct {
	ActualDuration int      `json:"actual_duration" binding:"required"`
	StressLevelEnd *float64 `json:"stress_level_end"`
	Notes          *string  `json:"notes"`
}

type MeditationChallenge struct {
	ID                   int        `json:"id" db:"id"`
	Name                 string     `json:"name" db:"name"`
	Description          *string    `json:"description" db:"description"`
	StartDate            time.Time  `json:"start_date" db:"start_date"`
	EndDate              time.Time  `json:"end_date" db:"end_date"`
	DurationRequirement  *int       `json:"duration_requirement" db:"duration_requirement"`
	FrequencyRequirement *int       `json:"frequency_requirement" db:"frequency_requirement"`
	CreatedBy            *int       `json:"-" db:"created_by"`
	Creator              *string    `json:"creator" db:"creator"`
	IsPublic             bool       `json:"is_public" db:"is_public"`
	MaxParticipants      *int       `json:"max_participants" db:"max_participants"`
	CurrentParticipants  int        `json:"current_participants" db:"current_participants"`
	ChallengeType        string     `json:"challenge_type" db:"challenge_type"`
	Status               string     `json:"status"`
}

// ChallengeStatus derives the lifecycle phase from the challenge dates.
func (ch *MeditationChallenge) ChallengeStatus(now time.Time) string {
	today := now.UTC().Truncate(24 * time.Hour)
	switch {
	case ch.EndDate.Before(today):
		return "completed"
	case !ch.StartDate.After(today):
		return "active"
	default:
		return "upcoming"
	}
}

// CanJoin applies the capacity and visibility rules for challenge signup.
func (ch *MeditationChallenge) CanJoin(userID int, alreadyJoined bool, now time.Time) bool {
	if alreadyJoined {
		return false
	}
	if !ch.IsPublic && (ch.CreatedBy == nil || *ch.CreatedBy != userID) {
		return false
	}
	if ch.MaxParticipants != nil && ch.CurrentParticipants >= *ch.MaxParticipants {
		return false
	}
	status := ch.ChallengeStatus(now)
	return status == "upcoming" || status == "active"
}

type MeditationAchievement struct {
	ID              int       `json:"id" db:"id"`
	UserID          int       `json:"-" db:"user_id"`
	AchievementType string    `json:"achievement_type" db:"achievement_type"`
	EarnedDate      time.Time `json:"earned_date" db:"earned_date"`
	Description     *string   `json:"description" db:"description"`
	MilestoneValue  *int      `json:"milestone_value" db:"milestone_value"`
}

type ChallengeParticipant struct {
	UserID            int       `json:"user_id" db:"user_id"`
	Username          string    `json:"username" db:"username"`
	ChallengeID       int       `json:"-" db:"challenge_id"`
	JoinDate          time.Time `json:"join_date" db:"join_date"`
	CompletedSessions int       `json:"completed_sessions" db:"completed_sessions"`
	TotalMinutes      int       `json:"total_minutes" db:"total_minutes"`
}
