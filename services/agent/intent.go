package agent

import (
	"context"
	"strings"

	"innkeeper/models"
	"innkeeper/utils"

	"go.uber.org/zap"
)

// Keyword rules run before the language model. Order matters: cancel and
// reschedule are checked ahead of booking so "cancel my booking" and
// "change my booking" do not start a new reservation.
var (
	cancelWords     = []string{"cancel"}
	rescheduleWords = []string{"reschedule", "change", "modify", "update", "move", "rebook"}
	bookingWords    = []string{"book", "reserve", "reservation", "room", "hotel", "stay"}
	greetingWords   = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// detectIntent classifies a message when no flow is in progress. The
// deterministic rule pass decides most messages; the language model is only
// asked when no keyword matches, and anything it returns outside the fixed
// set degrades to inquiry.
func (s *DefaultAgentService) detectIntent(ctx context.Context, text string) models.Intent {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, cancelWords):
		return models.IntentCancel
	case containsAny(lower, rescheduleWords):
		return models.IntentReschedule
	case containsAny(lower, bookingWords):
		return models.IntentBooking
	case containsAny(lower, greetingWords):
		return models.IntentGreeting
	}

	intent, err := s.LLM.ClassifyIntent(ctx, text)
	if err != nil {
		utils.GetLogger().Debug("intent classification fallback failed", zap.Error(err))
		return models.IntentInquiry
	}
	if !models.ValidIntent(string(intent)) {
		return models.IntentInquiry
	}
	return intent
}
