package coaching

import (
	"testing"
	"time"

	"aibuddy/pkg/models"

	"github.com/stretchr/testify/assert"
)

func moodAt(mood string, hoursAgo int) models.MoodLog {
	return models.MoodLog{Mood: mood, Timestamp: time.Now().UTC().Add(-time.Duration(hoursAgo) * time.Hour)}
}

func TestMoodValueDefaultsToNeutral(t *testing.T) {
	assert.Equal(t, 5, moodValue("Excited"))
	assert.Equal(t, 1, moodValue("Anxious"))
	assert.Equal(t, 3, moodValue("Contemplative"))
}

func TestAnalyzeMoodPatternsTrend(t *testing.T) {
	tests := []struct {
		name  string
		moods []models.MoodLog
		trend string
	}{
		{
			name:  "improving when latest mood scores higher",
			moods: []models.MoodLog{moodAt("Sad", 48), moodAt("Neutral", 24), moodAt("Happy", 1)},
			trend: "improving",
		},
		{
			name:  "declining when latest mood scores lower",
			moods: []models.MoodLog{moodAt("Happy", 48), moodAt("Tired", 24), moodAt("Stressed", 1)},
			trend: "declining",
		},
		{
			name:  "stable for a single entry",
			moods: []models.MoodLog{moodAt("Neutral", 1)},
			trend: "stable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AnalyzeMoodPatterns(tt.moods)
			assert.Contains(t, report.Summary, tt.trend)
		})
	}
}

func TestAnalyzeMoodPatternsVariability(t *testing.T) {
	varied := []models.MoodLog{
		moodAt("Happy", 96), moodAt("Sad", 72), moodAt("Anxious", 48), moodAt("Excited", 24),
	}
	report := AnalyzeMoodPatterns(varied)
	assert.Contains(t, report.Patterns[0].Summary, "4 different states")

	steady := []models.MoodLog{moodAt("Relaxed", 48), moodAt("Relaxed", 24), moodAt("Relaxed", 1)}
	report = AnalyzeMoodPatterns(steady)
	assert.Contains(t, report.Patterns[0].Summary, "relatively consistent")
	assert.Contains(t, report.Patterns[0].Summary, "Relaxed")
}

func TestAnalyzeMoodPatternsEmpty(t *testing.T) {
	report := AnalyzeMoodPatterns(nil)
	assert.Contains(t, report.Summary, "No recent mood data")
	assert.Empty(t, report.Patterns)
}

func TestAnalyzeFoodPatternsMindfulRating(t *testing.T) {
	low, high := 2, 4

	report := AnalyzeFoodPatterns([]models.FoodLog{{FoodName: "Pasta", MindfulRating: &low}})
	assert.Contains(t, report.Patterns[len(report.Patterns)-1].Summary, "opportunity")

	report = AnalyzeFoodPatterns([]models.FoodLog{{FoodName: "Salad", MindfulRating: &high}})
	assert.Contains(t, report.Patterns[len(report.Patterns)-1].Summary, "progress")
}

func TestAnalyzeFoodPatternsEmpty(t *testing.T) {
	report := AnalyzeFoodPatterns(nil)
	assert.Contains(t, report.Summary, "No recent food logs")
	assert.Len(t, report.Patterns, 1)
}

func TestBuildIPTInsightsMoodShift(t *testing.T) {
	calm := []models.MoodLog{moodAt("Neutral", 48), moodAt("Thoughtful", 24)}
	insights := BuildIPTInsights(calm, nil)
	assert.Len(t, insights.RelationshipPatterns.Patterns, 3)

	volatile := []models.MoodLog{moodAt("Happy", 48), moodAt("Anxious", 24)}
	insights = BuildIPTInsights(volatile, nil)
	assert.Len(t, insights.RelationshipPatterns.Patterns, 4)
	assert.Contains(t, insights.RelationshipPatterns.Patterns[3].Summary, "mood shifts")
}

func TestBuildIPTInsightsSocialEating(t *testing.T) {
	note := "Dinner with friends at the new restaurant"
	foods := []models.FoodLog{{FoodName: "Pizza", Notes: &note}}

	insights := BuildIPTInsights(nil, foods)
	assert.Len(t, insights.SocialSupport.Practices, 4)
	assert.Contains(t, insights.SocialSupport.Practices[3].Summary, "social eating")

	plain := "Quick bite at my desk"
	insights = BuildIPTInsights(nil, []models.FoodLog{{FoodName: "Sandwich", Notes: &plain}})
	assert.Len(t, insights.SocialSupport.Practices, 3)
}

func TestBuildDBTInsightsEmptySummary(t *testing.T) {
	insights := BuildDBTInsights(nil)
	assert.Contains(t, insights.Mindfulness.Summary, "Start tracking")

	insights = BuildDBTInsights([]models.MoodLog{moodAt("Happy", 1)})
	assert.Contains(t, insights.Mindfulness.Summary, "mindful awareness")
}
