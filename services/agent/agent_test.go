package agent

import (
	"context"
	"errors"
	"testing"

	"innkeeper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullBookingFlow(t *testing.T) {
	svc, states, bookings, _ := newTestAgent()
	reminders := &fakeReminders{}
	svc.Reminders = reminders
	ctx := context.Background()

	reply := svc.ProcessMessage(ctx, "user-1", "I want to book a room")
	assert.Equal(t, promptDates, reply)
	assert.Equal(t, models.StepBookingDates, states.step("user-1"))

	reply = svc.ProcessMessage(ctx, "user-1", "2024-03-01 to 2024-03-05")
	assert.Contains(t, reply, "What type of room would you like?")
	assert.Contains(t, reply, "Suite ($250/night)")

	reply = svc.ProcessMessage(ctx, "user-1", "suite")
	assert.Equal(t, promptGuests, reply)

	reply = svc.ProcessMessage(ctx, "user-1", "2")
	assert.Contains(t, reply, "Booking confirmed!")
	assert.Contains(t, reply, "$1000.00")
	assert.Contains(t, reply, "4 nights")
	assert.Regexp(t, `BK[0-9A-F]{8}`, reply)

	booking := bookings.single()
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, models.RoomSuite, booking.RoomType)
	assert.Equal(t, "2024-03-01", booking.CheckInDate)
	assert.Equal(t, "2024-03-05", booking.CheckOutDate)
	assert.Equal(t, 2, booking.NumGuests)
	assert.Equal(t, 1000.0, booking.TotalPrice)
	assert.Equal(t, models.StatusConfirmed, booking.Status)

	// The conversation ends with the confirmation.
	assert.Equal(t, models.StepNone, states.step("user-1"))
	assert.Equal(t, []string{booking.ID}, reminders.scheduled)
}

func TestBookingDateValidation(t *testing.T) {
	svc, states, _, _ := newTestAgent()
	ctx := context.Background()

	svc.ProcessMessage(ctx, "user-1", "book a room")

	reply := svc.ProcessMessage(ctx, "user-1", "next tuesday until friday")
	assert.Equal(t, retryDates, reply)
	assert.Equal(t, models.StepBookingDates, states.step("user-1"))

	reply = svc.ProcessMessage(ctx, "user-1", "2024-03-05 to 2024-03-01")
	assert.Equal(t, retryDateOrder, reply)
	assert.Equal(t, models.StepBookingDates, states.step("user-1"))

	reply = svc.ProcessMessage(ctx, "user-1", "2024-03-01 to 2024-03-01")
	assert.Equal(t, retryDateOrder, reply)
}

func TestBookingUnknownRoomDefaultsToStandard(t *testing.T) {
	svc, _, bookings, _ := newTestAgent()
	ctx := context.Background()

	svc.ProcessMessage(ctx, "user-1", "book a room")
	svc.ProcessMessage(ctx, "user-1", "2024-03-01 to 2024-03-03")
	svc.ProcessMessage(ctx, "user-1", "something cheap")
	reply := svc.ProcessMessage(ctx, "user-1", "1")

	assert.Contains(t, reply, "Booking confirmed!")
	booking := bookings.single()
	assert.Equal(t, models.RoomStandard, booking.RoomType)
	assert.Equal(t, 200.0, booking.TotalPrice)
}

func TestBookingInvalidGuestCountRetries(t *testing.T) {
	svc, states, _, _ := newTestAgent()
	ctx := context.Background()

	svc.ProcessMessage(ctx, "user-1", "book a room")
	svc.ProcessMessage(ctx, "user-1", "2024-03-01 to 2024-03-03")
	svc.ProcessMessage(ctx, "user-1", "deluxe")

	reply := svc.ProcessMessage(ctx, "user-1", "a few of us")
	assert.Equal(t, retryGuestCount, reply)
	assert.Equal(t, models.StepBookingGuests, states.step("user-1"))

	reply = svc.ProcessMessage(ctx, "user-1", "3")
	assert.Contains(t, reply, "Booking confirmed!")
}

func TestBookingCreateFailureKeepsFlow(t *testing.T) {
	svc, states, bookings, _ := newTestAgent()
	ctx := context.Background()

	svc.ProcessMessage(ctx, "user-1", "book a room")
	svc.ProcessMessage(ctx, "user-1", "2024-03-01 to 2024-03-03")
	svc.ProcessMessage(ctx, "user-1", "deluxe")

	bookings.createErr = errors.New("connection reset")
	reply := svc.ProcessMessage(ctx, "user-1", "2")
	assert.Equal(t, replyApology, reply)
	// The flow is still at the guests step so the user can retry.
	assert.Equal(t, models.StepBookingGuests, states.step("user-1"))

	bookings.createErr = nil
	reply = svc.ProcessMessage(ctx, "user-1", "2")
	assert.Contains(t, reply, "Booking confirmed!")
}

func seedBooking(bookings *memBookingRepo, id, userID string) models.Booking {
	b := models.Booking{
		ID:           id,
		UserID:       userID,
		CheckInDate:  "2024-03-01",
		CheckOutDate: "2024-03-05",
		RoomType:     models.RoomDeluxe,
		NumGuests:    2,
		TotalPrice:   600,
		Status:       models.StatusConfirmed,
	}
	bookings.bookings[id] = b
	return b
}

func TestRescheduleFlow(t *testing.T) {
	svc, states, bookings, _ := newTestAgent()
	ctx := context.Background()
	seedBooking(bookings, "BKAAAA1111", "user-1")

	reply := svc.ProcessMessage(ctx, "user-1", "I need to reschedule")
	assert.Equal(t, promptBookingID, reply)

	reply = svc.ProcessMessage(ctx, "user-1", "it's BKAAAA1111")
	assert.Contains(t, reply, "I found your booking (2024-03-01 to 2024-03-05)")

	reply = svc.ProcessMessage(ctx, "user-1", "2024-04-10 to 2024-04-12")
	assert.Contains(t, reply, "Your booking has been rescheduled!")
	assert.Contains(t, reply, "2024-04-10 to 2024-04-12")
	// Two deluxe nights at the new dates.
	assert.Contains(t, reply, "$300.00")

	updated, err := bookings.GetByID(ctx, "BKAAAA1111")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-10", updated.CheckInDate)
	assert.Equal(t, 300.0, updated.TotalPrice)
	assert.Equal(t, models.StepNone, states.step("user-1"))
}

func TestRescheduleUnknownBookingStaysInFlow(t *testing.T) {
	svc, states, _, _ := newTestAgent()
	ctx := context.Background()

	svc.ProcessMessage(ctx, "user-1", "change my booking")

	reply := svc.ProcessMessage(ctx, "user-1", "BKDEADBEEF")
	assert.Equal(t, replyNotFound, reply)
	assert.Equal(t, models.StepRescheduleBookingID, states.step("user-1"))
}

func TestRescheduleForeignBookingRejected(t *testing.T) {
	svc, _, bookings, _ := newTestAgent()
	ctx := context.Background()
	seedBooking(bookings, "BKAAAA1111", "someone-else")

	svc.ProcessMessage(ctx, "user-1", "reschedule please")
	reply := svc.ProcessMessage(ctx, "user-1", "BKAAAA1111")
	assert.Equal(t, replyNotFound, reply)
}

func TestRescheduleMalformedID(t *testing.T) {
	svc, _, _, _ := newTestAgent()
	ctx := context.Background()

	svc.ProcessMessage(ctx, "user-1", "reschedule please")
	reply := svc.ProcessMessage(ctx, "user-1", "my id is 12345")
	assert.Equal(t, promptBookingID2, reply)
}

func TestCancelBooking(t *testing.T) {
	svc, _, bookings, _ := newTestAgent()
	ctx := context.Background()
	seedBooking(bookings, "BKAAAA1111", "user-1")

	reply := svc.ProcessMessage(ctx, "user-1", "cancel BKAAAA1111")
	assert.Contains(t, reply, "Your booking BKAAAA1111 has been cancelled.")

	updated, err := bookings.GetByID(ctx, "BKAAAA1111")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
}

func TestCancelWithoutIDPrompts(t *testing.T) {
	svc, _, _, _ := newTestAgent()

	reply := svc.ProcessMessage(context.Background(), "user-1", "I want to cancel")
	assert.Equal(t, promptCancelID, reply)
}

func TestCancelForeignBookingRejected(t *testing.T) {
	svc, _, bookings, _ := newTestAgent()
	seedBooking(bookings, "BKAAAA1111", "someone-else")

	reply := svc.ProcessMessage(context.Background(), "user-1", "cancel BKAAAA1111")
	assert.Equal(t, replyNotFound, reply)

	b, _ := bookings.GetByID(context.Background(), "BKAAAA1111")
	assert.Equal(t, models.StatusConfirmed, b.Status)
}

func TestGreeting(t *testing.T) {
	svc, _, _, _ := newTestAgent()

	reply := svc.ProcessMessage(context.Background(), "user-1", "hello")
	assert.Contains(t, reply, "Grand Palace Hotel")
	assert.Contains(t, reply, "How can I assist you today?")
}

func TestInquiryCannedFallback(t *testing.T) {
	svc, _, _, _ := newTestAgent()

	// The model is down, so the keyword table answers.
	reply := svc.ProcessMessage(context.Background(), "user-1", "do you have a pool?")
	assert.Equal(t, "Yes, we have a swimming pool available for all guests.", reply)

	reply = svc.ProcessMessage(context.Background(), "user-1", "is there wifi?")
	assert.Equal(t, "Free WiFi is available throughout the hotel.", reply)
}

func TestInquiryUsesModelAnswer(t *testing.T) {
	svc, _, _, llm := newTestAgent()
	llm.completeErr = nil
	llm.completion = "Check-in starts at 3:00 PM and we would love to see you!"

	reply := svc.ProcessMessage(context.Background(), "user-1", "when can I arrive?")
	assert.Equal(t, llm.completion, reply)
}

func TestStateLoadFailureApologizes(t *testing.T) {
	svc, states, _, _ := newTestAgent()
	states.getErr = errors.New("redis down")

	reply := svc.ProcessMessage(context.Background(), "user-1", "hello")
	assert.Equal(t, replyApology, reply)
}

func TestConversationsAreIsolatedPerUser(t *testing.T) {
	svc, states, _, _ := newTestAgent()
	ctx := context.Background()

	svc.ProcessMessage(ctx, "user-1", "book a room")
	reply := svc.ProcessMessage(ctx, "user-2", "hello")

	assert.Contains(t, reply, "Welcome")
	assert.Equal(t, models.StepBookingDates, states.step("user-1"))
	assert.Equal(t, models.StepNone, states.step("user-2"))

	// user-1's flow keeps going unaffected.
	reply = svc.ProcessMessage(ctx, "user-1", "2024-03-01 to 2024-03-03")
	assert.Equal(t, models.StepBookingRoom, states.step("user-1"))
	assert.Contains(t, reply, "What type of room")
}
