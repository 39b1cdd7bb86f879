package models

import "time"

type User struct {
	ID                  int        `json:"id" db:"id"`
	Username            string     `json:"username" db:"username"`
	Email               string     `json:"email" db:"email"`
	PasswordHash        string     `json:"-" db:"password_hash"`
	Role                string     `json:"role" db:"role"`
	RingDataAuthorized  bool       `json:"is_ring_data_authorized" db:"is_ring_data_authorized"`
	WeightLbs           *float64   `json:"weight_lbs" db:"weight_lbs"`
	DailyWaterGoal      float64    `json:"daily_water_goal" db:"daily_water_goal"`
	CurrentStreak       int        `json:"current_streak" db:"current_streak"`
	LongestStreak       int        `json:"longest_streak" db:"longest_streak"`
	LastMeditationDate  *time.Time `json:"last_meditation_date" db:"last_meditation_date"`
	TotalMeditationMins int        `json:"total_meditation_minutes" db:"total_meditation_minutes"`
	TotalSessions       int        `json:"total_sessions" db:"total_sessions"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	LastLogin           *time.Time `json:"last_login" db:"last_login"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Password       *string  `json:"password"`
	Role           *string  `json:"role"`
	WeightLbs      *float64 `json:"weight_lbs"`
	DailyWaterGoal *float64 `json:"daily_water_goal"`
}

type UserChanges struct {
	PasswordHash   *string
	Role           *string
	WeightLbs      *float64
	DailyWaterGoal *float64
}

func (c *UserChanges) HasChanges() bool {
	return c.PasswordHash != nil || c.Role != nil || c.WeightLbs != nil || c.DailyWaterGoal != nil
}

// MeditationStats is the aggregate view returned alongside a user profile.
type MeditationStats struct {
	CurrentStreak          int      `json:"current_streak"`
	LongestStreak          int      `json:"longest_streak"`
	TotalSessions          int      `json:"total_sessions"`
	TotalMinutes           int      `json:"total_minutes"`
	AverageStressReduction *float64 `json:"average_stress_reduction"`
}
