package telemetry

import (
	"encoding/json"
	"fmt"

	"aibuddy/pkg/models"
)

type thresholdRule struct {
	metricType string
	// high fires when the value exceeds the bound, low when it falls below
	high            *float64
	low             *float64
	trigger         string
	impact          string
	recommendations []string
}

func f(v float64) *float64 { return &v }

var thresholdRules = []thresholdRule{
	{
		metricType: "hr",
		high:       f(100),
		trigger:    "Resting heart rate above 100 bpm",
		impact:     "Elevated resting heart rate can signal stress, dehydration or poor recovery",
		recommendations: []string{
			"Take a few minutes of slow breathing",
			"Drink a glass of water",
			"Consider a short meditation session",
		},
	},
	{
		metricType: "hrv",
		low:        f(20),
		trigger:    "Heart rate variability below 20 ms",
		impact:     "Low HRV often follows poor sleep or sustained stress",
		recommendations: []string{
			"Prioritize an early night",
			"Avoid caffeine this afternoon",
			"Try a guided relaxation session",
		},
	},
	{
		metricType: "temp",
		high:       f(1.0),
		trigger:    "Skin temperature more than 1.0 C above baseline",
		impact:     "A raised skin temperature can precede illness",
		recommendations: []string{
			"Watch for other symptoms",
			"Stay hydrated and rest",
		},
	},
	{
		metricType: "spo2",
		low:        f(94),
		trigger:    "Blood oxygen below 94%",
		impact:     "Sustained low SpO2 during sleep is worth discussing with a doctor",
		recommendations: []string{
			"Re-check the ring fit",
			"If readings persist, consult a medical professional",
		},
	},
}

// EvaluateSample returns an insight when the sample crosses a rule bound,
// nil otherwise.
func EvaluateSample(sample *models.BiomarkerSample) *models.BiomarkerInsight {
	for _, rule := range thresholdRules {
		if rule.metricType != sample.MetricType {
			continue
		}

		var threshold float64
		switch {
		case rule.high != nil && sample.Value > *rule.high:
			threshold = *rule.high
		case rule.low != nil && sample.Value < *rule.low:
			threshold = *rule.low
		default:
			continue
		}

		recommendations, err := json.Marshal(rule.recommendations)
		if err != nil {
			recommendations = []byte("[]")
		}
		trigger := fmt.Sprintf("%s (measured %.1f)", rule.trigger, sample.Value)
		impact := rule.impact

		return &models.BiomarkerInsight{
			UserID:             sample.UserID,
			Source:             sample.Source,
			MetricType:         sample.MetricType,
			Value:              sample.Value,
			Threshold:          threshold,
			TriggerDescription: &trigger,
			ImpactDescription:  &impact,
			Recommendations:    recommendations,
		}
	}

	return nil
}
