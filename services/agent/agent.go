package agent

import (
	"context"
	"fmt"

	"innkeeper/models"
	"innkeeper/utils"

	"go.uber.org/zap"
)

const replyApology = "I'm sorry, I encountered an error processing your request. Please try again."

// ProcessMessage runs one conversational turn for a user. While a flow step
// is active it dictates routing; fresh intent detection only runs between
// flows. Panics and store failures all collapse into the generic apology.
func (s *DefaultAgentService) ProcessMessage(ctx context.Context, userID, text string) (reply string) {
	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	logger := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("agent turn panicked", zap.String("user_id", userID), zap.Any("panic", r))
			reply = replyApology
		}
	}()

	state, err := s.States.Get(ctx, userID)
	if err != nil {
		logger.Error("failed to load conversation state", zap.String("user_id", userID), zap.Error(err))
		return replyApology
	}

	if state.InFlow() {
		switch state.Step {
		case models.StepBookingDates, models.StepBookingRoom, models.StepBookingGuests:
			return s.continueBooking(ctx, state, text)
		case models.StepRescheduleBookingID, models.StepRescheduleDates:
			return s.continueReschedule(ctx, state, text)
		default:
			// Unknown step from an older deployment: drop it and start over.
			logger.Warn("clearing unknown conversation step",
				zap.String("user_id", userID), zap.String("step", string(state.Step)))
			if err := s.States.Clear(ctx, userID); err != nil {
				logger.Error("failed to clear conversation state", zap.Error(err))
			}
			state = &models.ConversationState{UserID: userID}
		}
	}

	switch s.detectIntent(ctx, text) {
	case models.IntentBooking:
		return s.startBooking(ctx, state, text)
	case models.IntentReschedule:
		return s.startReschedule(ctx, state)
	case models.IntentCancel:
		return s.handleCancel(ctx, userID, text)
	case models.IntentGreeting:
		return s.handleGreeting()
	default:
		return s.handleInquiry(ctx, text)
	}
}

func (s *DefaultAgentService) handleGreeting() string {
	return fmt.Sprintf("Hello! Welcome to %s!\n\nI can help you with:\n"+
		"- Making a new reservation\n"+
		"- Rescheduling or cancelling existing bookings\n"+
		"- Answering questions about our hotel\n\n"+
		"How can I assist you today?", s.Hotel.Name)
}

// saveState persists the turn's transition; on failure the caller answers
// with the apology and the flow stays where it was (retry on next turn).
func (s *DefaultAgentService) saveState(ctx context.Context, state *models.ConversationState) bool {
	if err := s.States.Save(ctx, state); err != nil {
		utils.GetLogger().Error("failed to save conversation state",
			zap.String("user_id", state.UserID), zap.Error(err))
		return false
	}
	return true
}

func (s *DefaultAgentService) clearState(ctx context.Context, userID string) {
	if err := s.States.Clear(ctx, userID); err != nil {
		utils.GetLogger().Error("failed to clear conversation state",
			zap.String("user_id", userID), zap.Error(err))
	}
}
