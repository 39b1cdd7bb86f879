package models

import "time"

const (
	SourceOura       = "Oura Ring"
	SourceUltrahuman = "Ultrahuman Ring"
)

// BiomarkerSample is a single reading pushed by a ring device or pulled from
// a vendor API.
type BiomarkerSample struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"-" db:"user_id"`
	DeviceID   string    `json:"device_id" db:"device_id"`
	Source     string    `json:"source" db:"source"`
	MetricType string    `json:"metric_type" db:"metric_type"`
	Value      float64   `json:"value" db:"value"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// BiomarkerInsight is created when a sample crosses a configured threshold.
type BiomarkerInsight struct {
	ID                 int       `json:"id" db:"id"`
	UserID             int       `json:"-" db:"user_id"`
	Source             string    `json:"source" db:"source"`
	MetricType         string    `json:"metric_type" db:"metric_type"`
	Value              float64   `json:"value" db:"value"`
	Threshold          float64   `json:"threshold" db:"threshold"`
	TriggerDescription *string   `json:"trigger_description" db:"trigger_description"`
	ImpactDescription  *string   `json:"impact_description" db:"impact_description"`
	Recommendations    []byte    `json:"-" db:"recommendations"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

type APIUsageLog struct {
	ID           int       `json:"id" db:"id"`
	APIName      string    `json:"api_name" db:"api_name"`
	Endpoint     string    `json:"endpoint" db:"endpoint"`
	UserID       *int      `json:"user_id" db:"user_id"`
	ResponseTime float64   `json:"response_time" db:"response_time"`
	Success      bool      `json:"success" db:"success"`
	StatusCode   int       `json:"status_code" db:"status_code"`
	CreatedAt    time.Time `json:"timestamp" db:"created_at"`
}
