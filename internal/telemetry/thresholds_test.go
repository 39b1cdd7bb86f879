package telemetry

import (
	"testing"

	"aibuddy/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSample(t *testing.T) {
	tests := []struct {
		name       string
		metricType string
		value      float64
		expectHit  bool
		threshold  float64
	}{
		{name: "high heart rate", metricType: "hr", value: 112, expectHit: true, threshold: 100},
		{name: "normal heart rate", metricType: "hr", value: 64, expectHit: false},
		{name: "low hrv", metricType: "hrv", value: 14, expectHit: true, threshold: 20},
		{name: "normal hrv", metricType: "hrv", value: 45, expectHit: false},
		{name: "raised temperature", metricType: "temp", value: 1.4, expectHit: true, threshold: 1.0},
		{name: "low spo2", metricType: "spo2", value: 91, expectHit: true, threshold: 94},
		{name: "unknown metric", metricType: "steps", value: 20000, expectHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := &models.BiomarkerSample{
				UserID:     7,
				Source:     models.SourceUltrahuman,
				MetricType: tt.metricType,
				Value:      tt.value,
			}

			insight := EvaluateSample(sample)

			if !tt.expectHit {
				assert.Nil(t, insight)
				return
			}

			assert.NotNil(t, insight)
			assert.Equal(t, tt.threshold, insight.Threshold)
			assert.Equal(t, tt.value, insight.Value)
			assert.Equal(t, 7, insight.UserID)
			assert.NotNil(t, insight.TriggerDescription)
			assert.NotEmpty(t, insight.Recommendations)
		})
	}
}

func TestValidateSampleMessage(t *testing.T) {
	valid := sampleMessage{
		UserID:     7,
		DeviceID:   "d9f5c1e2",
		Source:     models.SourceOura,
		MetricType: "hr",
		Value:      72,
		Timestamp:  1735689600,
	}
	assert.NoError(t, validateSampleMessage(&valid))

	missingUser := valid
	missingUser.UserID = 0
	assert.Error(t, validateSampleMessage(&missingUser))

	badSource := valid
	badSource.Source = "Fitbit"
	assert.Error(t, validateSampleMessage(&badSource))

	noTimestamp := valid
	noTimestamp.Timestamp = 0
	assert.Error(t, validateSampleMessage(&noTimestamp))
}
