package driving

import "fmt"

var mindfulEatingSuggestions = []string{
	"Take a moment to check your hunger level (1-10)",
	"Consider if you're eating from physical hunger or emotional needs",
	"Remember your health goals and values",
	"Think about how you'll feel after eating - will it align with your goals?",
	"Practice mindful eating by taking smaller bites and eating slowly",
	"Listen to your body's natural hunger and fullness signals",
	"Consider going for a short walk or drinking water first",
	"Remember that every meal is an opportunity to nourish your body",
}

// formatAudioMessage builds the spoken alert text read out by the client.
func formatAudioMessage(match Match) string {
	message := fmt.Sprintf("Alert: You are near %s, approximately %d meters away. ", match.Name, int(match.Distance))
	message += "Let's consider some mindful eating suggestions. "
	message += "Take a moment to check your hunger level on a scale of 1 to 10. " +
		"Consider if you're eating from physical hunger or emotional needs. " +
		"Remember your health goals and values. " +
		"Think about how you'll feel after eating - will it align with your goals? " +
		"Practice mindful eating by taking smaller bites and eating slowly. " +
		"Listen to your body's natural hunger and fullness signals. " +
		"Consider going for a short walk or drinking water first. " +
		"Remember that every meal is an opportunity to nourish your body."
	return message
}
