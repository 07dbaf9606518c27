package agent

import (
	"context"
	"fmt"
	"time"

	"innkeeper/models"
	"innkeeper/utils"

	"go.uber.org/zap"
)

const (
	promptDates     = "I'll help you book a room. Please provide your check-in and check-out dates in YYYY-MM-DD format."
	retryDates      = "I couldn't understand the dates. Please provide them in YYYY-MM-DD format."
	retryDateOrder  = "Your check-out date must be after your check-in date. Please send the dates again in YYYY-MM-DD format."
	promptGuests    = "How many guests will be staying?"
	retryGuestCount = "Please provide a valid number of guests."
)

func (s *DefaultAgentService) roomTypePrompt() string {
	return fmt.Sprintf("Great! What type of room would you like? We have Standard ($%.0f/night), Deluxe ($%.0f/night), and Suite ($%.0f/night).",
		s.Rates[models.RoomStandard], s.Rates[models.RoomDeluxe], s.Rates[models.RoomSuite])
}

// startBooking opens the booking flow: prompt for dates and move to the
// dates step.
func (s *DefaultAgentService) startBooking(ctx context.Context, state *models.ConversationState, text string) string {
	state.Step = models.StepBookingDates
	state.Slots = models.BookingSlots{}
	state.Slots.Merge(s.extractContact(ctx, text))
	if !s.saveState(ctx, state) {
		return replyApology
	}
	return promptDates
}

// continueBooking advances the booking flow by one turn.
func (s *DefaultAgentService) continueBooking(ctx context.Context, state *models.ConversationState, text string) string {
	// Contact details can show up in any turn; keep whatever we find.
	state.Slots.Merge(s.extractContact(ctx, text))

	switch state.Step {
	case models.StepBookingDates:
		checkIn, checkOut, ok := extractDates(text)
		if !ok {
			return retryDates
		}
		if models.NightsBetween(checkIn, checkOut) <= 0 {
			return retryDateOrder
		}
		state.Slots.CheckInDate = checkIn
		state.Slots.CheckOutDate = checkOut
		state.Step = models.StepBookingRoom
		if !s.saveState(ctx, state) {
			return replyApology
		}
		return s.roomTypePrompt()

	case models.StepBookingRoom:
		// An unrecognized answer silently defaults to standard.
		roomType, _ := extractRoomType(text)
		state.Slots.RoomType = string(roomType)
		state.Step = models.StepBookingGuests
		if !s.saveState(ctx, state) {
			return replyApology
		}
		return promptGuests

	case models.StepBookingGuests:
		guests, ok := extractGuestCount(text)
		if !ok {
			return retryGuestCount
		}
		state.Slots.NumGuests = guests
		return s.completeBooking(ctx, state)
	}

	return replyApology
}

// completeBooking prices the stay, persists the booking and clears the
// conversation. A store failure leaves the flow at the guests step so the
// next turn retries.
func (s *DefaultAgentService) completeBooking(ctx context.Context, state *models.ConversationState) string {
	logger := utils.GetLogger()

	roomType, _ := models.ParseRoomType(state.Slots.RoomType)
	nights := models.NightsBetween(state.Slots.CheckInDate, state.Slots.CheckOutDate)
	if nights <= 0 {
		// Dates were validated on entry; reaching this means corrupted state.
		s.clearState(ctx, state.UserID)
		return retryDates
	}
	total := s.Rates.Price(roomType, nights)

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:           models.NewBookingID(),
		UserID:       state.UserID,
		CheckInDate:  state.Slots.CheckInDate,
		CheckOutDate: state.Slots.CheckOutDate,
		RoomType:     roomType,
		NumGuests:    state.Slots.NumGuests,
		GuestName:    state.Slots.GuestName,
		GuestEmail:   state.Slots.GuestEmail,
		GuestPhone:   state.Slots.GuestPhone,
		TotalPrice:   total,
		Status:       models.StatusConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		logger.Error("failed to create booking",
			zap.String("user_id", state.UserID), zap.Error(err))
		return replyApology
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, booking); err != nil {
			logger.Warn("failed to schedule check-in reminder",
				zap.String("booking_id", booking.ID), zap.Error(err))
		}
	}

	s.clearState(ctx, state.UserID)
	return fmt.Sprintf("Booking confirmed! Your booking ID is %s.\nRoom: %s, %s to %s, %d guest(s).\nTotal price: $%.2f (%d nights)",
		booking.ID, booking.RoomType, booking.CheckInDate, booking.CheckOutDate,
		booking.NumGuests, booking.TotalPrice, nights)
}
