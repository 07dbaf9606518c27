package agent

import (
	"context"
	"fmt"

	"innkeeper/models"
	"innkeeper/utils"

	"go.uber.org/zap"
)

const promptCancelID = "To cancel your booking, please provide your booking ID (e.g., BK12345678)."

// handleCancel cancels a booking in a single turn: the identifier token is
// scanned straight out of the message, so no multi-turn state is needed.
func (s *DefaultAgentService) handleCancel(ctx context.Context, userID, text string) string {
	bookingID, ok := extractBookingID(text)
	if !ok {
		return promptCancelID
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil || booking.UserID != userID {
		return replyNotFound
	}

	booking.Status = models.StatusCancelled
	if err := s.Bookings.Update(ctx, booking); err != nil {
		utils.GetLogger().Error("failed to cancel booking",
			zap.String("booking_id", booking.ID), zap.Error(err))
		return replyApology
	}

	return fmt.Sprintf("Your booking %s has been cancelled.\nIf you need any further assistance, just ask.", booking.ID)
}
