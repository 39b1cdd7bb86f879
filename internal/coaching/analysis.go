package coaching

import (
	"fmt"

	"aibuddy/pkg/models"
)

// Insight pairs a short summary with the longer explanation shown on hover.
type Insight struct {
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

type PatternReport struct {
	Summary  string    `json:"summary"`
	Patterns []Insight `json:"patterns"`
}

// moodScale maps mood labels onto a 1-5 scale for trend analysis.
var moodScale = map[string]int{
	"Peaceful":   4,
	"Happy":      4,
	"Excited":    5,
	"Grateful":   4,
	"Relaxed":    4,
	"Thoughtful": 3,
	"Neutral":    3,
	"Uncertain":  2,
	"Sad":        1,
	"Stressed":   1,
	"Frustrated": 1,
	"Anxious":    1,
	"Tired":      2,
	"Unwell":     1,
	"Numb":       2,
}

func moodValue(mood string) int {
	if v, ok := moodScale[mood]; ok {
		return v
	}
	return 3
}

// moodTrend compares the newest entry against the oldest. Moods must be in
// chronological order.
func moodTrend(moods []models.MoodLog) string {
	if len(moods) < 2 {
		return "stable"
	}
	first := moodValue(moods[0].Mood)
	last := moodValue(moods[len(moods)-1].Mood)
	switch {
	case last > first:
		return "improving"
	case last < first:
		return "declining"
	default:
		return "stable"
	}
}

// predominantMood returns the most frequent mood label, preferring the one
// seen first on ties so repeated calls stay deterministic.
func predominantMood(moods []models.MoodLog) string {
	counts := map[string]int{}
	order := []string{}
	for _, m := range moods {
		if _, seen := counts[m.Mood]; !seen {
			order = append(order, m.Mood)
		}
		counts[m.Mood]++
	}

	best := "neutral"
	bestCount := 0
	for _, mood := range order {
		if counts[mood] > bestCount {
			best = mood
			bestCount = counts[mood]
		}
	}
	return best
}

var trendInsights = map[string]Insight{
	"improving": {
		Summary: "Your emotional well-being appears to be improving based on recent entries",
		Detail:  "The positive trend in your mood suggests that recent coping strategies and lifestyle choices are working well. Consider documenting what specific actions or circumstances might be contributing to this improvement.",
	},
	"declining": {
		Summary: "Your emotional well-being appears to be declining based on recent entries",
		Detail:  "A downward trend in mood can be challenging but provides valuable information. This might be a good time to review and adjust your coping strategies, reach out for support, or implement stress-reduction techniques.",
	},
	"stable": {
		Summary: "Your emotional well-being appears to be stable based on recent entries",
		Detail:  "Emotional stability can provide a strong foundation for personal growth. Use this stable period to reinforce positive habits and prepare strategies for future challenging situations.",
	},
}

// AnalyzeMoodPatterns builds the cognitive-coaching mood report from
// chronologically ordered mood entries.
func AnalyzeMoodPatterns(moods []models.MoodLog) PatternReport {
	if len(moods) == 0 {
		return PatternReport{
			Summary:  "No recent mood data available. Start tracking your moods to get personalized insights.",
			Patterns: []Insight{},
		}
	}

	trend := moodTrend(moods)
	predominant := predominantMood(moods)

	uniqueMoods := map[string]bool{}
	for _, m := range moods {
		uniqueMoods[m.Mood] = true
	}

	var patterns []Insight

	if len(uniqueMoods) > 3 {
		patterns = append(patterns, Insight{
			Summary: fmt.Sprintf("Your mood has been varying between %d different states, suggesting emotional variability", len(uniqueMoods)),
			Detail:  fmt.Sprintf("Experiencing %d different emotional states can indicate heightened emotional sensitivity. This variability provides opportunities to practice emotional regulation skills and identify triggers that influence your mood changes.", len(uniqueMoods)),
		})
	} else {
		patterns = append(patterns, Insight{
			Summary: fmt.Sprintf("Your mood has been relatively consistent, primarily %s", predominant),
			Detail:  fmt.Sprintf("Maintaining a consistent %s state suggests emotional stability. This can be beneficial for building routine and implementing sustainable lifestyle changes, though it's also important to maintain emotional flexibility.", predominant),
		})
	}

	patterns = append(patterns, trendInsights[trend])

	if len(moods) >= 2 {
		span := moods[len(moods)-1].Timestamp.Sub(moods[0].Timestamp)
		days := int(span.Hours() / 24)
		if days <= 1 {
			patterns = append(patterns, Insight{
				Summary: "You're tracking moods multiple times per day, which is great for self-awareness",
				Detail:  "Frequent mood tracking helps identify daily patterns and triggers, allowing for more immediate and effective responses to emotional changes. This detailed data can help refine your emotional regulation strategies.",
			})
		} else {
			patterns = append(patterns, Insight{
				Summary: fmt.Sprintf("You've been tracking moods over %d days, helping build a clearer pattern", days),
				Detail:  fmt.Sprintf("Consistent tracking over %d days provides valuable insights into your emotional patterns. This longer-term view can help identify weekly cycles, external influences, and the effectiveness of different coping strategies.", days),
			})
		}
	}

	return PatternReport{
		Summary:  fmt.Sprintf("Recent mood tracking shows a %s trend, predominantly %s.", trend, predominant),
		Patterns: patterns,
	}
}

// AnalyzeFoodPatterns builds the mindful-eating report from recent food logs.
func AnalyzeFoodPatterns(logs []models.FoodLog) PatternReport {
	if len(logs) == 0 {
		return PatternReport{
			Summary: "No recent food logs available. Start tracking your meals to get personalized insights.",
			Patterns: []Insight{
				{
					Summary: "Begin tracking your meals",
					Detail:  "Regular meal tracking helps build a comprehensive picture of your eating patterns and nutritional well-being.",
				},
			},
		}
	}

	patterns := []Insight{
		{
			Summary: "Eating patterns during stress",
			Detail:  "Your logs show specific patterns in eating habits during stressful periods. Understanding these patterns can help develop more mindful eating strategies.",
		},
		{
			Summary: "Emotional eating triggers",
			Detail:  "We've identified emotional triggers that may lead to mindless eating. Being aware of these triggers is the first step to developing healthier responses.",
		},
		{
			Summary: "Meal timing patterns",
			Detail:  "There's a noticeable pattern of meal timing changes when feeling overwhelmed. Creating a regular eating schedule can help maintain stability.",
		},
		{
			Summary: "Comfort food patterns",
			Detail:  "Your logs indicate specific food preferences during periods of anxiety. Understanding these patterns can help develop alternative coping strategies.",
		},
	}

	ratingSum, rated := 0, 0
	for _, l := range logs {
		if l.MindfulRating != nil {
			ratingSum += *l.MindfulRating
			rated++
		}
	}

	if rated > 0 {
		if float64(ratingSum)/float64(rated) < 3 {
			patterns = append(patterns, Insight{
				Summary: "Mindful eating opportunity",
				Detail:  "Your mindful eating ratings suggest an opportunity to enhance your awareness during meals. Try focusing on the sensory experience of eating.",
			})
		} else {
			patterns = append(patterns, Insight{
				Summary: "Positive mindful eating progress",
				Detail:  "You're showing good progress with mindful eating awareness. Continue building on these positive habits.",
			})
		}
	}

	return PatternReport{
		Summary:  "Analysis of your eating patterns reveals opportunities for mindful eating practice.",
		Patterns: patterns,
	}
}
