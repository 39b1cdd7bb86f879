package telemetry

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"aibuddy/pkg/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Topic carries one reading per message: ring/user/<id>/biomarker.
const topicPattern = "ring/user/+/biomarker"

type sampleMessage struct {
	UserID     int     `json:"user_id"`
	DeviceID   string  `json:"device_id"`
	Source     string  `json:"source"`
	MetricType string  `json:"metric_type"`
	Value      float64 `json:"value"`
	Timestamp  int64   `json:"timestamp"`
}

type RingSubscriber struct {
	client mqtt.Client
	repo   BiomarkerRepository
}

func NewRingSubscriber(client mqtt.Client, repo BiomarkerRepository) *RingSubscriber {
	return &RingSubscriber{client: client, repo: repo}
}

func (s *RingSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *RingSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw sampleMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid biomarker message: %v", err)
		return
	}

	if err := validateSampleMessage(&raw); err != nil {
		log.Printf("biomarker validation error: %v", err)
		return
	}

	sample := &models.BiomarkerSample{
		UserID:     raw.UserID,
		DeviceID:   raw.DeviceID,
		Source:     raw.Source,
		MetricType: raw.MetricType,
		Value:      raw.Value,
		RecordedAt: time.Unix(raw.Timestamp, 0).UTC(),
	}

	if err := s.repo.PersistSample(sample); err != nil {
		log.Printf("save biomarker sample error: %v", err)
		return
	}

	if insight := EvaluateSample(sample); insight != nil {
		if err := s.repo.PersistInsight(insight); err != nil {
			log.Printf("save biomarker insight error: %v", err)
		}
	}
}

func validateSampleMessage(msg *sampleMessage) error {
	if msg.UserID <= 0 {
		return fmt.Errorf("user_id: required")
	}
	if msg.MetricType == "" {
		return fmt.Errorf("metric_type: required")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	if msg.Source != models.SourceOura && msg.Source != models.SourceUltrahuman {
		return fmt.Errorf("source: unknown source %q", msg.Source)
	}
	return nil
}
