package stress

import (
	"fmt"
	"time"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	custom_error "aibuddy/pkg/errors"
)

type StressRepository interface {
	PersistStressLevel(level *models.StressLevel) error
	GetStressLevels(userID int, since time.Time) ([]models.StressLevel, error)
	GetLatestStressLevel(userID int) (*models.StressLevel, error)
	PersistCheckIn(checkIn *models.WellnessCheckIn) error
	GetCheckIns(userID int, limit int) ([]models.WellnessCheckIn, error)
}

type stressRepositoryImpl struct {
	r *repository.Repository
}

func NewStressRepository(r *repository.Repository) StressRepository {
	return &stressRepositoryImpl{r: r}
}

func (r *stressRepositoryImpl) PersistStressLevel(level *models.StressLevel) error {
	symptoms := level.Symptoms
	if symptoms == nil {
		symptoms = []byte("[]")
	}

	insert := r.r.GoquDBWrapper.Insert("stress_levels").
		Rows(goqu.Record{
			"user_id":  level.UserID,
			"level":    level.Level,
			"symptoms": symptoms,
			"notes":    level.Notes,
		}).
		Returning("id", "timestamp").
		Executor()

	if _, err := insert.ScanStruct(level); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to save stress level", string(pqErr.Code))
		}
		return fmt.Errorf("unable to save stress level: %w", err)
	}

	return nil
}

func (r *stressRepositoryImpl) GetStressLevels(userID int, since time.Time) ([]models.StressLevel, error) {
	var levels []models.StressLevel
	err := r.r.GoquDBWrapper.
		Select("id", "user_id", "level", "symptoms", "notes", "timestamp").
		From("stress_levels").
		Where(goqu.C("user_id").Eq(userID), goqu.C("timestamp").Gte(since)).
		Order(goqu.I("timestamp").Desc()).
		ScanStructs(&levels)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stress levels: %w", err)
	}

	return levels, nil
}

func (r *stressRepositoryImpl) GetLatestStressLevel(userID int) (*models.StressLevel, error) {
	var level models.StressLevel
	found, err := r.r.GoquDBWrapper.
		Select("id", "user_id", "level", "symptoms", "notes", "timestamp").
		From("stress_levels").
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.I("timestamp").Desc()).
		Limit(1).
		ScanStruct(&level)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest stress level: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &level, nil
}

func (r *stressRepositoryImpl) PersistCheckIn(checkIn *models.WellnessCheckIn) error {
	insert := r.r.GoquDBWrapper.Insert("wellness_check_ins").
		Rows(goqu.Record{
			"user_id":           checkIn.UserID,
			"energy_level":      checkIn.EnergyLevel,
			"physical_comfort":  checkIn.PhysicalComfort,
			"sleep_quality":     checkIn.SleepQuality,
			"breathing_quality": checkIn.BreathingQuality,
			"physical_tension":  checkIn.PhysicalTension,
			"stress_level":      checkIn.StressLevel,
			"mood":              checkIn.Mood,
			"focus_level":       checkIn.FocusLevel,
			"exercise_minutes":  checkIn.ExerciseMinutes,
			"water_glasses":     checkIn.WaterGlasses,
			"weather_condition": checkIn.WeatherCondition,
			"location_type":     checkIn.LocationType,
			"notes":             checkIn.Notes,
		}).
		Returning("id", "recorded_at").
		Executor()

	if _, err := insert.ScanStruct(checkIn); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to save wellness check-in", string(pqErr.Code))
		}
		return fmt.Errorf("unable to save wellness check-in: %w", err)
	}

	return nil
}

func (r *stressRepositoryImpl) GetCheckIns(userID int, limit int) ([]models.WellnessCheckIn, error) {
	var checkIns []models.WellnessCheckIn
	err := r.r.GoquDBWrapper.
		Select(
			"id", "user_id", "energy_level", "physical_comfort", "sleep_quality",
			"breathing_quality", "physical_tension", "stress_level", "mood",
			"focus_level", "exercise_minutes", "water_glasses",
			"weather_condition", "location_type", "notes", "recorded_at",
		).
		From("wellness_check_ins").
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.I("recorded_at").Desc()).
		Limit(uint(limit)).
		ScanStructs(&checkIns)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wellness check-ins: %w", err)
	}

	return checkIns, nil
}
