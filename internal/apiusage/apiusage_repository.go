package apiusage

import (
	"fmt"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type UsageRepository interface {
	PersistLog(entry models.APIUsageLog) error
	GetRecentLogs(limit int) ([]models.APIUsageLog, error)
	GetUsageByAPI() ([]APIStats, error)
}

type APIStats struct {
	APIName         string  `json:"api_name" db:"api_name"`
	Calls           int     `json:"calls" db:"calls"`
	Failures        int     `json:"failures" db:"failures"`
	AvgResponseTime float64 `json:"avg_response_time" db:"avg_response_time"`
}

type usageRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UsageRepository {
	return &usageRepositoryImpl{repository: r}
}

func (r *usageRepositoryImpl) PersistLog(entry models.APIUsageLog) error {
	record := goqu.Record{
		"api_name":      entry.APIName,
		"endpoint":      entry.Endpoint,
		"response_time": entry.ResponseTime,
		"success":       entry.Success,
		"status_code":   entry.StatusCode,
	}
	if entry.UserID != nil {
		record["user_id"] = *entry.UserID
	}

	query := r.repository.GoquDBWrapper.Insert("api_usage_logs").Rows(record)

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert API usage log: %w", err)
	}

	return nil
}

func (r *usageRepositoryImpl) GetRecentLogs(limit int) ([]models.APIUsageLog, error) {
	var logs []models.APIUsageLog
	query := r.repository.GoquDBWrapper.
		Select("id", "api_name", "endpoint", "user_id", "response_time", "success", "status_code", "created_at").
		From("api_usage_logs").
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit))

	if err := query.Executor().ScanStructs(&logs); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return logs, nil
}

func (r *usageRepositoryImpl) GetUsageByAPI() ([]APIStats, error) {
	var stats []APIStats
	query := r.repository.GoquDBWrapper.
		Select(
			goqu.I("api_name"),
			goqu.COUNT("*").As("calls"),
			goqu.SUM(goqu.Case().When(goqu.I("success").IsFalse(), 1).Else(0)).As("failures"),
			goqu.AVG("response_time").As("avg_response_time"),
		).
		From("api_usage_logs").
		GroupBy("api_name")

	if err := query.Executor().ScanStructs(&stats); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return stats, nil
}
