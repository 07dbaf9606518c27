package agent

import (
	"context"
	"testing"

	"innkeeper/models"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntentKeywords(t *testing.T) {
	svc, _, _, _ := newTestAgent()

	tests := []struct {
		name string
		text string
		want models.Intent
	}{
		{"booking", "I want to book a room", models.IntentBooking},
		{"booking via reserve", "Can I reserve for next week?", models.IntentBooking},
		{"cancel beats booking", "cancel my booking", models.IntentCancel},
		{"reschedule beats booking", "I want to reschedule my booking", models.IntentReschedule},
		{"change beats booking", "change my reservation please", models.IntentReschedule},
		{"greeting", "hello there", models.IntentGreeting},
		{"case insensitive", "BOOK me a Suite", models.IntentBooking},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.detectIntent(context.Background(), tc.text))
		})
	}
}

func TestDetectIntentModelFallback(t *testing.T) {
	svc, _, _, llm := newTestAgent()

	// No keyword matches, so the classifier decides.
	llm.intentErr = nil
	llm.intent = models.IntentInquiry
	assert.Equal(t, models.IntentInquiry, svc.detectIntent(context.Background(), "what time is check-in?"))

	llm.intent = models.IntentGreeting
	assert.Equal(t, models.IntentGreeting, svc.detectIntent(context.Background(), "good day to you"))
}

func TestDetectIntentModelFailureDegradesToInquiry(t *testing.T) {
	svc, _, _, _ := newTestAgent()

	// The default fake fails every call.
	assert.Equal(t, models.IntentInquiry, svc.detectIntent(context.Background(), "what time is check-in?"))
}

func TestDetectIntentRejectsUnknownLabel(t *testing.T) {
	svc, _, _, llm := newTestAgent()
	llm.intentErr = nil
	llm.intent = models.Intent("complaint")

	assert.Equal(t, models.IntentInquiry, svc.detectIntent(context.Background(), "the towels were damp"))
}
