package coaching

import (
	"strings"

	"aibuddy/pkg/models"
)

type IPTInsights struct {
	Communication        StrategySection  `json:"communication"`
	SocialSupport        PracticeSection  `json:"social_support"`
	RelationshipPatterns PatternReport    `json:"relationship_patterns"`
	GriefProcessing      TechniqueSection `json:"grief_processing"`
}

var socialKeywords = []string{"restaurant", "party", "friend", "family", "dinner with", "lunch with"}

// hasSocialEatingContext reports whether any food log note mentions a social
// setting.
func hasSocialEatingContext(logs []models.FoodLog) bool {
	for _, l := range logs {
		if l.Notes == nil {
			continue
		}
		note := strings.ToLower(*l.Notes)
		for _, kw := range socialKeywords {
			if strings.Contains(note, kw) {
				return true
			}
		}
	}
	return false
}

// hasSharpMoodShift reports whether any two consecutive entries differ by two
// or more steps on the mood scale. Moods must be in chronological order.
func hasSharpMoodShift(moods []models.MoodLog) bool {
	for i := 1; i < len(moods); i++ {
		diff := moodValue(moods[i].Mood) - moodValue(moods[i-1].Mood)
		if diff >= 2 || diff <= -2 {
			return true
		}
	}
	return false
}

// BuildIPTInsights assembles the interpersonal skills report, augmenting the
// base material with patterns detected in recent mood and food entries.
func BuildIPTInsights(moods []models.MoodLog, foods []models.FoodLog) IPTInsights {
	insights := IPTInsights{
		Communication: StrategySection{
			Summary: "Clear communication strengthens the relationships that support emotional well-being.",
			Strategies: []Insight{
				{
					Summary: "Express needs directly",
					Detail:  "State what you need clearly rather than expecting others to guess. Direct requests reduce misunderstandings and resentment.",
				},
				{
					Summary: "Use 'I' statements",
					Detail:  "Frame concerns around your own experience ('I feel overwhelmed when...') rather than accusations. This keeps conversations collaborative.",
				},
				{
					Summary: "Listen to understand",
					Detail:  "Give full attention when others speak and reflect back what you heard before responding. Feeling understood deepens connection on both sides.",
				},
			},
		},
		SocialSupport: PracticeSection{
			Summary: "A strong support network buffers stress and improves emotional resilience.",
			Practices: []Insight{
				{
					Summary: "Map your support network",
					Detail:  "Identify the people you can turn to for practical help, emotional support, and companionship. Knowing who to call makes reaching out easier.",
				},
				{
					Summary: "Schedule regular connection",
					Detail:  "Put recurring time with supportive people on your calendar. Consistent contact maintains relationships before a crisis makes them necessary.",
				},
				{
					Summary: "Practice asking for help",
					Detail:  "Start with small, specific requests. Accepting help strengthens relationships and counters the isolation that low moods encourage.",
				},
			},
		},
		RelationshipPatterns: PatternReport{
			Summary: "Recurring relationship patterns often shape emotional well-being more than single events.",
			Patterns: []Insight{
				{
					Summary: "Track interaction effects",
					Detail:  "Notice how your mood changes before and after interactions with specific people. Patterns in these changes reveal which relationships energize or drain you.",
				},
				{
					Summary: "Identify role transitions",
					Detail:  "Life changes like a new job, a move, or a shifting relationship can disrupt your sense of self. Naming the transition helps you grieve the old role and grow into the new one.",
				},
				{
					Summary: "Address disputes directly",
					Detail:  "Unresolved disagreements with important people are a common driver of low mood. Clarifying what each side expects is often the first step toward resolution.",
				},
			},
		},
		GriefProcessing: TechniqueSection{
			Summary: "Processing loss, whether of a person, a role, or an expectation, supports emotional recovery.",
			Techniques: []Insight{
				{
					Summary: "Allow the feelings",
					Detail:  "Grief comes in waves and carries many emotions, including ones that surprise you. Allowing them without judgment supports healthy mourning.",
				},
				{
					Summary: "Tell the story",
					Detail:  "Talking or writing about a loss, including the difficult parts, helps integrate the experience rather than avoiding it.",
				},
				{
					Summary: "Rebuild routines gradually",
					Detail:  "Loss disrupts daily structure. Rebuilding small routines, at your own pace, restores a sense of stability while honoring what changed.",
				},
			},
		},
	}

	if hasSharpMoodShift(moods) {
		insights.RelationshipPatterns.Patterns = append(insights.RelationshipPatterns.Patterns, Insight{
			Summary: "Notice connection between mood shifts and interactions",
			Detail:  "Your recent entries show sharp mood changes between check-ins. Reviewing what happened around these shifts, especially interactions with others, can reveal interpersonal triggers worth addressing.",
		})
	}

	if hasSocialEatingContext(foods) {
		insights.SocialSupport.Practices = append(insights.SocialSupport.Practices, Insight{
			Summary: "Develop strategies for mindful social eating",
			Detail:  "Your food logs mention social settings like meals with friends or family. Planning ahead for these occasions helps you stay mindful while still enjoying the connection they provide.",
		})
	}

	return insights
}
