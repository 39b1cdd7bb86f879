package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	FastingActive    = "active"
	FastingCompleted = "completed"
	FastingAbandoned = "abandoned"

	ProgramExtended     = "extended"
	ProgramIntermittent = "intermittent"
)

type FastingProgram struct {
	ID                int             `json:"id" db:"id"`
	Name              string          `json:"name" db:"name"`
	DurationDays      int             `json:"duration_days" db:"duration_days"`
	Description       string          `json:"description" db:"description"`
	Benefits          string          `json:"benefits" db:"benefits"`
	Instructions      string          `json:"instructions" db:"instructions"`
	DailyGuidance     []byte          `json:"-" db:"daily_guidance"`
	Type              string          `json:"type" db:"type"`
	Contraindications *string         `json:"contraindications" db:"contraindications"`
}

// Guidance decodes the per-day guidance stored as JSON on the program row.
func (p *FastingProgram) Guidance() (map[string]string, error) {
	if len(p.DailyGuidance) == 0 {
		return nil, nil
	}
	guidance := map[string]string{}
	if err := json.Unmarshal(p.DailyGuidance, &guidance); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily guidance: %w", err)
	}
	return guidance, nil
}

type FastingSession struct {
	ID          int        `json:"id" db:"id"`
	UserID      int        `json:"-" db:"user_id"`
	ProgramID   int        `json:"program_id" db:"program_id"`
	ProgramName string     `json:"program" db:"program_name"`
	ProgramDays int        `json:"total_days" db:"program_days"`
	ProgramType string     `json:"program_type" db:"program_type"`
	StartDate   time.Time  `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date" db:"end_date"`
	Status      string     `json:"status" db:"status"`
	Notes       *string    `json:"notes" db:"notes"`
}

// CurrentDay clamps elapsed days into [1, program duration]. Completed
// sessions always report their final day.
func (s *FastingSession) CurrentDay(now time.Time) int {
	if s.Status == FastingCompleted {
		return s.ProgramDays
	}
	elapsed := int(now.Sub(s.StartDate).Hours() / 24)
	day := elapsed + 1
	if day < 1 {
		day = 1
	}
	if s.ProgramDays > 0 && day > s.ProgramDays {
		day = s.ProgramDays
	}
	return day
}

func (s *FastingSession) DisplayDay(now time.Time) string {
	if s.ProgramDays == 0 {
		return "Not started"
	}
	return fmt.Sprintf("Day %d of %d", s.CurrentDay(now), s.ProgramDays)
}

type FastingCheckIn struct {
	ID          int       `json:"id" db:"id"`
	SessionID   int       `json:"-" db:"session_id"`
	DayNumber   int       `json:"day_number" db:"day_number"`
	CheckInTime time.Time `json:"check_in_time" db:"check_in_time"`
	Completed   bool      `json:"completed" db:"completed"`
	Mood        *string   `json:"mood" db:"mood"`
	EnergyLevel *string   `json:"energy_level" db:"energy_level"`
	Weight      *float64  `json:"weight" db:"weight"`
	Symptoms    []byte    `json:"-" db:"symptoms"`
	Notes       *string   `json:"notes" db:"notes"`
}

type FastingCheckInRequest struct {
	DayNumber   int      `json:"day_number" binding:"required"`
	Completed   bool     `json:"completed"`
	Mood        *string  `json:"mood"`
	EnergyLevel *string  `json:"energy_level"`
	Weight      *float64 `json:"weight"`
	Symptoms    []string `json:"symptoms"`
	Notes       *string  `json:"notes"`
}
