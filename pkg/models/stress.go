package models

import "time"

type StressLevel struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"-" db:"user_id"`
	Level     int       `json:"level" db:"level"`
	Symptoms  []byte    `json:"-" db:"symptoms"`
	Notes     *string   `json:"notes" db:"notes"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type StressLevelRequest struct {
	Level    int      `json:"level" binding:"required"`
	Symptoms []string `json:"symptoms"`
	Notes    *string  `json:"notes"`
}

// WellnessCheckIn is the manual check-in used by users without a biometric
// device. All scale fields are 1-10.
type WellnessCheckIn struct {
	ID               int       `json:"id" db:"id"`
	UserID           int       `json:"-" db:"user_id"`
	EnergyLevel      *int      `json:"energy_level" db:"energy_level"`
	PhysicalComfort  *int      `json:"physical_comfort" db:"physical_comfort"`
	SleepQuality     *int      `json:"sleep_quality" db:"sleep_quality"`
	BreathingQuality *int      `json:"breathing_quality" db:"breathing_quality"`
	PhysicalTension  *int      `json:"physical_tension" db:"physical_tension"`
	StressLevel      *int      `json:"stress_level" db:"stress_level"`
	Mood             *string   `json:"mood" db:"mood"`
	FocusLevel       *int      `json:"focus_level" db:"focus_level"`
	ExerciseMinutes  *int      `json:"exercise_minutes" db:"exercise_minutes"`
	WaterGlasses     *int      `json:"water_glasses" db:"water_glasses"`
	WeatherCondition *string   `json:"weather_condition" db:"weather_condition"`
	LocationType     *string   `json:"location_type" db:"location_type"`
	Notes            *string   `json:"notes" db:"notes"`
	RecordedAt       time.Time `json:"recorded_at" db:"recorded_at"`
}
