package models

import "time"

// Intent is the coarse category of a single user message.
type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentBooking    Intent = "booking"
	IntentReschedule Intent = "reschedule"
	IntentCancel     Intent = "cancel"
	IntentInquiry    Intent = "inquiry"
)

// ValidIntent reports whether s is one of the fixed intent values.
func ValidIntent(s string) bool {
	switch Intent(s) {
	case IntentGreeting, IntentBooking, IntentReschedule, IntentCancel, IntentInquiry:
		return true
	}
	return false
}

// ConversationMessage is one transcript row, inbound or outbound.
type ConversationMessage struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Text      string    `bson:"text" json:"text"`
	FromUser  bool      `bson:"from_user" json:"from_user"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// InboundMessage is a single message delivered by the webhook or the direct
// chat endpoint.
type InboundMessage struct {
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the payload for the direct chat endpoint.
type ChatRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// ChatResponse carries the agent's reply back to the caller.
type ChatResponse struct {
	Reply string `json:"reply"`
}
