package agent

import (
	"context"
	"fmt"

	"innkeeper/models"
	"innkeeper/utils"

	"go.uber.org/zap"
)

const (
	promptBookingID  = "To reschedule your booking, please provide your booking ID (e.g., BK12345678)."
	promptNewDates   = "Please provide your new check-in and check-out dates in YYYY-MM-DD format."
	replyNotFound    = "I couldn't find a booking with that ID. Please check and try again."
	retryNewDates    = "I couldn't understand the new dates. Please provide them in YYYY-MM-DD format."
	promptBookingID2 = "That doesn't look like a booking ID. It starts with BK followed by 8 characters (e.g., BK12345678)."
)

// startReschedule opens the reschedule flow: ask for the booking ID.
func (s *DefaultAgentService) startReschedule(ctx context.Context, state *models.ConversationState) string {
	state.Step = models.StepRescheduleBookingID
	state.Slots = models.BookingSlots{}
	if !s.saveState(ctx, state) {
		return replyApology
	}
	return promptBookingID
}

// continueReschedule advances the reschedule flow by one turn.
func (s *DefaultAgentService) continueReschedule(ctx context.Context, state *models.ConversationState, text string) string {
	switch state.Step {
	case models.StepRescheduleBookingID:
		bookingID, ok := extractBookingID(text)
		if !ok {
			return promptBookingID2
		}

		booking, err := s.Bookings.GetByID(ctx, bookingID)
		if err != nil || booking.UserID != state.UserID {
			// Same answer for missing and foreign bookings: identifiers are
			// not an ownership proof, so don't reveal which case it was.
			return replyNotFound
		}

		state.Slots.BookingID = bookingID
		state.Step = models.StepRescheduleDates
		if !s.saveState(ctx, state) {
			return replyApology
		}
		return fmt.Sprintf("I found your booking (%s to %s). %s",
			booking.CheckInDate, booking.CheckOutDate, promptNewDates)

	case models.StepRescheduleDates:
		checkIn, checkOut, ok := extractDates(text)
		if !ok {
			return retryNewDates
		}
		if models.NightsBetween(checkIn, checkOut) <= 0 {
			return retryDateOrder
		}

		booking, err := s.Bookings.GetByID(ctx, state.Slots.BookingID)
		if err != nil || booking.UserID != state.UserID {
			s.clearState(ctx, state.UserID)
			return replyNotFound
		}

		booking.CheckInDate = checkIn
		booking.CheckOutDate = checkOut
		// Dates changed, so the nightly-rate invariant demands a recompute.
		booking.TotalPrice = s.Rates.Price(booking.RoomType, booking.Nights())

		if err := s.Bookings.Update(ctx, booking); err != nil {
			utils.GetLogger().Error("failed to reschedule booking",
				zap.String("booking_id", booking.ID), zap.Error(err))
			return replyApology
		}

		s.clearState(ctx, state.UserID)
		return fmt.Sprintf("Your booking has been rescheduled!\nBooking ID: %s\nNew dates: %s to %s\nUpdated total: $%.2f",
			booking.ID, booking.CheckInDate, booking.CheckOutDate, booking.TotalPrice)
	}

	return replyApology
}
