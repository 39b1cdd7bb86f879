package models

import "time"

type MoodLog struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"-" db:"user_id"`
	Mood      string    `json:"mood" db:"mood"`
	Notes     *string   `json:"notes" db:"notes"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type WaterLog struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"-" db:"user_id"`
	Amount    float64   `json:"amount" db:"amount"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type WeightLog struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"-" db:"user_id"`
	Weight    float64   `json:"weight" db:"weight"`
	Notes     *string   `json:"notes" db:"notes"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type FoodLog struct {
	ID                 int       `json:"id" db:"id"`
	UserID             int       `json:"-" db:"user_id"`
	FoodName           string    `json:"food_name" db:"food_name"`
	ServingSize        float64   `json:"serving_size" db:"serving_size"`
	ServingUnit        string    `json:"serving_unit" db:"serving_unit"`
	MealType           *string   `json:"meal_type" db:"meal_type"`
	Location           *string   `json:"location" db:"location"`
	MindfulRating      *int      `json:"mindful_eating_rating" db:"mindful_eating_rating"`
	HungerBefore       *int      `json:"hunger_before" db:"hunger_before"`
	FullnessAfter      *int      `json:"fullness_after" db:"fullness_after"`
	EmotionalState     *string   `json:"emotional_state" db:"emotional_state"`
	SatisfactionLevel  *int      `json:"satisfaction_level" db:"satisfaction_level"`
	Calories           *float64  `json:"calories" db:"calories"`
	Protein            *float64  `json:"protein" db:"protein"`
	Carbs              *float64  `json:"carbs" db:"carbs"`
	Fat                *float64  `json:"fat" db:"fat"`
	Notes              *string   `json:"notes" db:"notes"`
	Timestamp          time.Time `json:"timestamp" db:"timestamp"`
}

// DailySummary aggregates a single tracking day for the dashboard.
type DailySummary struct {
	Date          string   `json:"date"`
	WaterTotal    float64  `json:"water_total"`
	WaterGoal     float64  `json:"water_goal"`
	WaterPercent  float64  `json:"water_percent"`
	Calories      float64  `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbs         float64  `json:"carbs"`
	Fat           float64  `json:"fat"`
	MealsLogged   int      `json:"meals_logged"`
	LatestWeight  *float64 `json:"latest_weight"`
	LatestMood    *string  `json:"latest_mood"`
}

type WellnessQuote struct {
	ID        int     `json:"id" db:"id"`
	QuoteText string  `json:"quote_text" db:"quote_text"`
	Author    *string `json:"author" db:"author"`
	Category  string  `json:"category" db:"category"`
}
