package coaching

import (
	"fmt"
	"time"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type CoachingRepository interface {
	GetRecentMoods(userID int, since time.Time) ([]models.MoodLog, error)
	GetRecentFoodLogs(userID int, since time.Time) ([]models.FoodLog, error)
}

type coachingRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) CoachingRepository {
	return &coachingRepositoryImpl{repository: r}
}

// Rows come back oldest first so trend analysis can read them in order.
func (r *coachingRepositoryImpl) GetRecentMoods(userID int, since time.Time) ([]models.MoodLog, error) {
	var moods []models.MoodLog
	query := r.repository.GoquDBWrapper.
		Select("id", "user_id", "mood", "notes", "timestamp").
		From("mood_log").
		Where(goqu.Ex{"user_id": userID}, goqu.I("timestamp").Gte(since)).
		Order(goqu.I("timestamp").Asc())

	if err := query.Executor().ScanStructs(&moods); err != nil {
		return nil, fmt.Errorf("failed to fetch mood logs: %w", err)
	}

	return moods, nil
}

func (r *coachingRepositoryImpl) GetRecentFoodLogs(userID int, since time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	query := r.repository.GoquDBWrapper.
		Select("id", "user_id", "food_name", "serving_size", "serving_unit", "meal_type", "location",
			"mindful_eating_rating", "hunger_before", "fullness_after", "emotional_state",
			"satisfaction_level", "calories", "protein", "carbs", "fat", "notes", "timestamp").
		From("food_log").
		Where(goqu.Ex{"user_id": userID}, goqu.I("timestamp").Gte(since)).
		Order(goqu.I("timestamp").Asc())

	if err := query.Executor().ScanStructs(&logs); err != nil {
		return nil, fmt.Errorf("failed to fetch food logs: %w", err)
	}

	return logs, nil
}
