package telemetry

import (
	"encoding/json"
	"fmt"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	custom_error "aibuddy/pkg/errors"
)

type BiomarkerRepository interface {
	PersistSample(sample *models.BiomarkerSample) error
	GetSamples(userID int, metricType string, limit int) ([]models.BiomarkerSample, error)
	PersistInsight(insight *models.BiomarkerInsight) error
	GetInsights(userID int, limit int) ([]models.BiomarkerInsight, error)
}

type biomarkerRepositoryImpl struct {
	r *repository.Repository
}

func NewBiomarkerRepository(r *repository.Repository) BiomarkerRepository {
	return &biomarkerRepositoryImpl{r: r}
}

func (r *biomarkerRepositoryImpl) PersistSample(sample *models.BiomarkerSample) error {
	insert := r.r.GoquDBWrapper.Insert("biomarker_samples").
		Rows(goqu.Record{
			"user_id":     sample.UserID,
			"device_id":   sample.DeviceID,
			"source":      sample.Source,
			"metric_type": sample.MetricType,
			"value":       sample.Value,
			"recorded_at": sample.RecordedAt,
		}).
		Returning("id").
		Executor()

	if _, err := insert.ScanStruct(sample); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to save biomarker sample", string(pqErr.Code))
		}
		return fmt.Errorf("unable to save biomarker sample: %w", err)
	}

	return nil
}

func (r *biomarkerRepositoryImpl) GetSamples(userID int, metricType string, limit int) ([]models.BiomarkerSample, error) {
	query := r.r.GoquDBWrapper.
		Select("id", "user_id", "device_id", "source", "metric_type", "value", "recorded_at").
		From("biomarker_samples").
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.I("recorded_at").Desc()).
		Limit(uint(limit))

	if metricType != "" {
		query = query.Where(goqu.C("metric_type").Eq(metricType))
	}

	var samples []models.BiomarkerSample
	if err := query.ScanStructs(&samples); err != nil {
		return nil, fmt.Errorf("failed to fetch biomarker samples: %w", err)
	}

	return samples, nil
}

func (r *biomarkerRepositoryImpl) PersistInsight(insight *models.BiomarkerInsight) error {
	recommendations := insight.Recommendations
	if recommendations == nil {
		recommendations, _ = json.Marshal([]string{})
	}

	insert := r.r.GoquDBWrapper.Insert("biomarker_insights").
		Rows(goqu.Record{
			"user_id":             insight.UserID,
			"source":              insight.Source,
			"metric_type":         insight.MetricType,
			"value":               insight.Value,
			"threshold":           insight.Threshold,
			"trigger_description": insight.TriggerDescription,
			"impact_description":  insight.ImpactDescription,
			"recommendations":     recommendations,
		}).
		Returning("id", "created_at").
		Executor()

	if _, err := insert.ScanStruct(insight); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to save biomarker insight", string(pqErr.Code))
		}
		return fmt.Errorf("unable to save biomarker insight: %w", err)
	}

	return nil
}

func (r *biomarkerRepositoryImpl) GetInsights(userID int, limit int) ([]models.BiomarkerInsight, error) {
	var insights []models.BiomarkerInsight
	err := r.r.GoquDBWrapper.
		Select("id", "user_id", "source", "metric_type", "value", "threshold",
			"trigger_description", "impact_description", "recommendations", "created_at").
		From("biomarker_insights").
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit)).
		ScanStructs(&insights)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch biomarker insights: %w", err)
	}

	return insights, nil
}
