package ai

import (
	"context"
	"strings"
)

// Canned assistant replies keyed by topic. The mock matches topics in a
// fixed order and answers with the first hit, so a message touching
// several topics always resolves the same way.
const (
	replyWeight     = "Great question about weight management! Based on your current progress, you're on track to reach your goal. Focus on maintaining a consistent calorie deficit of 300-500 calories per day."
	replyWorkout    = "For your fitness level, I recommend increasing your workout intensity gradually. Try adding 5 minutes to your cardio sessions and increasing weights by 5-10% when you can complete all sets easily."
	replyNutrition  = "Your nutrition tracking shows good protein intake! Consider adding more colorful vegetables to increase your micronutrient density. Aim for at least 5 different colored foods per day."
	replySleep      = "Sleep is crucial for recovery and weight management. Your sleep quality data suggests you might benefit from a consistent bedtime routine. Try avoiding screens 1 hour before bed."
	replyMotivation = "You're doing amazing! Remember, sustainable changes take time. Focus on progress, not perfection. Every healthy choice you make is an investment in your future self."
	replyDefault    = "I'm here to help you on your health journey! Feel free to ask me about nutrition, workouts, sleep, or any wellness topics. How can I support you today?"
)

type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Reply matches the lowercased message against the topic keywords in
// priority order and returns the canned answer for the first match.
func (p *MockProvider) Reply(ctx context.Context, message string) (string, error) {
	_ = ctx

	lowered := strings.ToLower(message)

	switch {
	case strings.Contains(lowered, "weight"):
		return replyWeight, nil
	case strings.Contains(lowered, "workout"):
		return replyWorkout, nil
	case strings.Contains(lowered, "nutrition"):
		return replyNutrition, nil
	case strings.Contains(lowered, "sleep"):
		return replySleep, nil
	case strings.Contains(lowered, "motivation"):
		return replyMotivation, nil
	default:
		return replyDefault, nil
	}
}
