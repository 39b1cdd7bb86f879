package coaching

import "aibuddy/pkg/models"

type StrategySection struct {
	Summary    string    `json:"summary"`
	Strategies []Insight `json:"strategies"`
}

type PracticeSection struct {
	Summary   string    `json:"summary"`
	Practices []Insight `json:"practices"`
}

type TechniqueSection struct {
	Summary    string    `json:"summary"`
	Techniques []Insight `json:"techniques"`
}

type DBTInsights struct {
	Mindfulness                PatternReport `json:"mindfulness"`
	EmotionRegulation          PatternReport `json:"emotion_regulation"`
	DistressTolerance          PatternReport `json:"distress_tolerance"`
	InterpersonalEffectiveness PatternReport `json:"interpersonal_effectiveness"`
}

type ACTInsights struct {
	CommittedAction StrategySection  `json:"committed_action"`
	PresentMoment   PracticeSection  `json:"present_moment"`
	Acceptance      StrategySection  `json:"acceptance"`
	Defusion        TechniqueSection `json:"defusion"`
}

// BuildDBTInsights assembles the dialectical skills report. Most content is
// curriculum material; only the empty-data summary depends on the logs.
func BuildDBTInsights(moods []models.MoodLog) DBTInsights {
	mindfulnessSummary := "Your mood entries show opportunities to practice mindful awareness of emotions."
	if len(moods) == 0 {
		mindfulnessSummary = "Start tracking your moods to receive mindfulness practice suggestions tailored to your patterns."
	}

	return DBTInsights{
		Mindfulness: PatternReport{
			Summary: mindfulnessSummary,
			Patterns: []Insight{
				{
					Summary: "Observe emotions without judgment",
					Detail:  "Practice noticing your emotions as they arise without labeling them as good or bad. This observing stance creates space between you and the emotion.",
				},
				{
					Summary: "Describe feelings with words",
					Detail:  "Putting feelings into words activates the rational mind and can reduce emotional intensity. Try naming the emotion, its intensity, and where you feel it in your body.",
				},
				{
					Summary: "Participate fully in the present",
					Detail:  "Throw yourself into current activities with full attention. Participation counters rumination about the past or worry about the future.",
				},
			},
		},
		EmotionRegulation: PatternReport{
			Summary: "Emotion regulation skills help you respond to feelings rather than react to them.",
			Patterns: []Insight{
				{
					Summary: "Check the facts",
					Detail:  "Before acting on an emotion, examine whether its intensity fits the actual situation. Emotions driven by interpretations rather than facts often shrink under examination.",
				},
				{
					Summary: "Opposite action",
					Detail:  "When an emotion doesn't fit the facts or acting on it would make things worse, try doing the opposite of what the emotion urges. Approach what anxiety tells you to avoid.",
				},
				{
					Summary: "Build positive experiences",
					Detail:  "Schedule pleasant activities daily, even small ones. Accumulating positive experiences builds emotional resilience over time.",
				},
			},
		},
		DistressTolerance: PatternReport{
			Summary: "Distress tolerance skills help you survive crisis moments without making them worse.",
			Patterns: []Insight{
				{
					Summary: "TIPP for intense emotions",
					Detail:  "Temperature (cold water on your face), Intense exercise, Paced breathing, and Paired muscle relaxation can rapidly reduce emotional arousal when distress peaks.",
				},
				{
					Summary: "Radical acceptance",
					Detail:  "Accepting reality as it is, rather than fighting what you cannot change, reduces suffering. Acceptance is not approval; it's acknowledging what is so you can respond effectively.",
				},
				{
					Summary: "Distract with wise mind",
					Detail:  "When distress is high and the situation can't be solved right now, healthy distraction (activities, contributing, comparisons, opposite emotions) buys time for intensity to drop.",
				},
			},
		},
		InterpersonalEffectiveness: PatternReport{
			Summary: "Interpersonal effectiveness skills help you ask for what you need and maintain relationships.",
			Patterns: []Insight{
				{
					Summary: "DEAR MAN for requests",
					Detail:  "Describe the situation, Express feelings, Assert your request, Reinforce the benefits, stay Mindful, Appear confident, and Negotiate. This structure makes difficult asks clearer and calmer.",
				},
				{
					Summary: "GIVE for relationships",
					Detail:  "Be Gentle, act Interested, Validate the other person, and use an Easy manner. These skills preserve relationships during difficult conversations.",
				},
				{
					Summary: "FAST for self-respect",
					Detail:  "Be Fair, no unnecessary Apologies, Stick to your values, and be Truthful. Maintaining self-respect in interactions protects long-term well-being.",
				},
			},
		},
	}
}

// BuildACTInsights returns the acceptance-and-commitment skills report.
func BuildACTInsights() ACTInsights {
	return ACTInsights{
		CommittedAction: StrategySection{
			Summary: "Committed action means taking steps guided by your values, even when it's uncomfortable.",
			Strategies: []Insight{
				{
					Summary: "Identify your core values",
					Detail:  "Clarify what matters most to you in areas like health, relationships, and personal growth. Values act as a compass when motivation wavers.",
				},
				{
					Summary: "Set values-based goals",
					Detail:  "Translate values into small, concrete actions you can take this week. A value of health might become a ten-minute walk after lunch.",
				},
				{
					Summary: "Act despite discomfort",
					Detail:  "Willingness to feel discomfort while doing what matters is a skill that strengthens with practice. Start with small acts of willingness.",
				},
			},
		},
		PresentMoment: PracticeSection{
			Summary: "Present-moment awareness anchors you in the here and now rather than in worry or rumination.",
			Practices: []Insight{
				{
					Summary: "Five senses grounding",
					Detail:  "Notice five things you can see, four you can hear, three you can touch, two you can smell, and one you can taste. This quickly returns attention to the present.",
				},
				{
					Summary: "Mindful daily activities",
					Detail:  "Choose one routine activity each day, like brushing your teeth or drinking coffee, and give it your full attention.",
				},
				{
					Summary: "Breathing anchor",
					Detail:  "Use the sensation of breathing as an anchor. When the mind wanders, gently return attention to the breath without self-criticism.",
				},
			},
		},
		Acceptance: StrategySection{
			Summary: "Acceptance means making room for difficult feelings instead of struggling against them.",
			Strategies: []Insight{
				{
					Summary: "Drop the struggle",
					Detail:  "Fighting unwanted feelings often amplifies them. Practice allowing feelings to be present without trying to fix or remove them.",
				},
				{
					Summary: "Expansion practice",
					Detail:  "Breathe into the part of your body where a difficult feeling sits. Imagine creating space around it rather than tensing against it.",
				},
				{
					Summary: "Self-compassion",
					Detail:  "Treat yourself with the kindness you'd offer a good friend facing the same difficulty. Self-criticism fuels avoidance; compassion enables engagement.",
				},
			},
		},
		Defusion: TechniqueSection{
			Summary: "Defusion techniques create distance from unhelpful thoughts so they have less power over behavior.",
			Techniques: []Insight{
				{
					Summary: "Label the thought",
					Detail:  "Prefix difficult thoughts with 'I'm having the thought that...'. This small shift highlights that thoughts are mental events, not facts.",
				},
				{
					Summary: "Thank your mind",
					Detail:  "When your mind offers an unhelpful worry, try responding 'Thanks, mind' and returning to what you were doing. This acknowledges the thought without obeying it.",
				},
				{
					Summary: "Leaves on a stream",
					Detail:  "Visualize placing each thought on a leaf floating down a stream. Watch thoughts come and go without holding onto any of them.",
				},
			},
		},
	}
}
