package tracker

import (
	"fmt"
	"time"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type TrackerRepository interface {
	PersistMood(log *models.MoodLog) error
	PersistWater(log *models.WaterLog) error
	PersistWeight(log *models.WeightLog) error
	PersistFood(log *models.FoodLog) error
	GetWaterTotal(userID int, from, to time.Time) (float64, error)
	GetFoodLogs(userID int, from, to time.Time, mealType string) ([]models.FoodLog, error)
	GetWeightHistory(userID int, limit int) ([]models.WeightLog, error)
	GetLatestMood(userID int, from, to time.Time) (*models.MoodLog, error)
	GetRandomQuote(category string) (*models.WellnessQuote, error)
	GetWaterGoal(userID int) (float64, error)
}

type trackerRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) TrackerRepository {
	return &trackerRepositoryImpl{repository: r}
}

func (r *trackerRepositoryImpl) PersistMood(log *models.MoodLog) error {
	query := r.repository.GoquDBWrapper.Insert("mood_log").
		Rows(goqu.Record{
			"user_id": log.UserID,
			"mood":    log.Mood,
			"notes":   log.Notes,
		}).
		Returning("id", "timestamp")

	if _, err := query.Executor().ScanStruct(log); err != nil {
		return fmt.Errorf("failed to insert mood log: %w", err)
	}
	return nil
}

func (r *trackerRepositoryImpl) PersistWater(log *models.WaterLog) error {
	query := r.repository.GoquDBWrapper.Insert("water_log").
		Rows(goqu.Record{
			"user_id": log.UserID,
			"amount":  log.Amount,
		}).
		Returning("id", "timestamp")

	if _, err := query.Executor().ScanStruct(log); err != nil {
		return fmt.Errorf("failed to insert water log: %w", err)
	}
	return nil
}

func (r *trackerRepositoryImpl) PersistWeight(log *models.WeightLog) error {
	query := r.repository.GoquDBWrapper.Insert("weight_log").
		Rows(goqu.Record{
			"user_id": log.UserID,
			"weight":  log.Weight,
			"notes":   log.Notes,
		}).
		Returning("id", "timestamp")

	if _, err := query.Executor().ScanStruct(log); err != nil {
		return fmt.Errorf("failed to insert weight log: %w", err)
	}
	return nil
}

func (r *trackerRepositoryImpl) PersistFood(log *models.FoodLog) error {
	query := r.repository.GoquDBWrapper.Insert("food_log").
		Rows(goqu.Record{
			"user_id":               log.UserID,
			"food_name":             log.FoodName,
			"serving_size":          log.ServingSize,
			"serving_unit":          log.ServingUnit,
			"meal_type":             log.MealType,
			"location":              log.Location,
			"mindful_eating_rating": log.MindfulRating,
			"hunger_before":         log.HungerBefore,
			"fullness_after":        log.FullnessAfter,
			"emotional_state":       log.EmotionalState,
			"satisfaction_level":    log.SatisfactionLevel,
			"calories":              log.Calories,
			"protein":               log.Protein,
			"carbs":                 log.Carbs,
			"fat":                   log.Fat,
			"notes":                 log.Notes,
		}).
		Returning("id", "timestamp")

	if _, err := query.Executor().ScanStruct(log); err != nil {
		return fmt.Errorf("failed to insert food log: %w", err)
	}
	return nil
}

func (r *trackerRepositoryImpl) GetWaterTotal(userID int, from, to time.Time) (float64, error) {
	var total []float64
	query := r.repository.GoquDBWrapper.
		Select(goqu.COALESCE(goqu.SUM("amount"), 0)).
		From("water_log").
		Where(
			goqu.Ex{"user_id": userID},
			goqu.I("timestamp").Gte(from),
			goqu.I("timestamp").Lt(to),
		)

	if err := query.Executor().ScanVals(&total); err != nil {
		return 0, fmt.Errorf("failed to sum water log: %w", err)
	}
	if len(total) == 0 {
		return 0, nil
	}
	return total[0], nil
}

func (r *trackerRepositoryImpl) GetFoodLogs(userID int, from, to time.Time, mealType string) ([]models.FoodLog, error) {
	conditions := []goqu.Expression{
		goqu.Ex{"user_id": userID},
		goqu.I("timestamp").Gte(from),
		goqu.I("timestamp").Lt(to),
	}
	if mealType != "" {
		conditions = append(conditions, goqu.Ex{"meal_type": mealType})
	}

	var logs []models.FoodLog
	query := r.repository.GoquDBWrapper.
		Select("id", "user_id", "food_name", "serving_size", "serving_unit", "meal_type", "location",
			"mindful_eating_rating", "hunger_before", "fullness_after", "emotional_state",
			"satisfaction_level", "calories", "protein", "carbs", "fat", "notes", "timestamp").
		From("food_log").
		Where(conditions...).
		Order(goqu.I("timestamp").Desc())

	if err := query.Executor().ScanStructs(&logs); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return logs, nil
}

func (r *trackerRepositoryImpl) GetWeightHistory(userID int, limit int) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	query := r.repository.GoquDBWrapper.
		Select("id", "user_id", "weight", "notes", "timestamp").
		From("weight_log").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("timestamp").Desc()).
		Limit(uint(limit))

	if err := query.Executor().ScanStructs(&logs); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return logs, nil
}

func (r *trackerRepositoryImpl) GetLatestMood(userID int, from, to time.Time) (*models.MoodLog, error) {
	var mood models.MoodLog
	query := r.repository.GoquDBWrapper.
		Select("id", "user_id", "mood", "notes", "timestamp").
		From("mood_log").
		Where(
			goqu.Ex{"user_id": userID},
			goqu.I("timestamp").Gte(from),
			goqu.I("timestamp").Lt(to),
		).
		Order(goqu.I("timestamp").Desc()).
		Limit(1)

	found, err := query.Executor().ScanStruct(&mood)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest mood: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &mood, nil
}

func (r *trackerRepositoryImpl) GetRandomQuote(category string) (*models.WellnessQuote, error) {
	conditions := []goqu.Expression{}
	if category != "" {
		conditions = append(conditions, goqu.Ex{"category": category})
	}

	var quote models.WellnessQuote
	query := r.repository.GoquDBWrapper.
		Select("id", "quote_text", "author", "category").
		From("wellness_quotes").
		Where(conditions...).
		Order(goqu.L("RANDOM()").Asc()).
		Limit(1)

	found, err := query.Executor().ScanStruct(&quote)
	if err != nil {
		return nil, fmt.Errorf("failed to get wellness quote: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &quote, nil
}

func (r *trackerRepositoryImpl) GetWaterGoal(userID int) (float64, error) {
	var goals []float64
	query := r.repository.GoquDBWrapper.
		Select("daily_water_goal").
		From("users").
		Where(goqu.Ex{"id": userID})

	if err := query.Executor().ScanVals(&goals); err != nil {
		return 0, fmt.Errorf("failed to get water goal: %w", err)
	}
	if len(goals) == 0 {
		return 0, fmt.Errorf("user %d not found", userID)
	}
	return goals[0], nil
}
