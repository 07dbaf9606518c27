package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"innkeeper/models"

	"github.com/hibiken/asynq"
)

const TypeCheckinReminder = "reminder:checkin"

// reminderHour is the local hour the day-before DM goes out.
const reminderHour = 9

// NewCheckinReminderTask builds the delayed task for a booking's reminder.
func NewCheckinReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCheckinReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues check-in reminders on the asynq queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
	hotel  string
}

func NewAsynqReminderScheduler(client *asynq.Client, hotelName string) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: client, hotel: hotelName}
}

// Schedule queues a reminder DM for the morning before check-in. Bookings
// starting within a day get no reminder.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, booking *models.Booking) error {
	checkIn, err := time.Parse("2006-01-02", booking.CheckInDate)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q: %w", booking.CheckInDate, err)
	}

	fireAt := checkIn.AddDate(0, 0, -1).Add(reminderHour * time.Hour)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		FireDate:  fireAt.Format(time.RFC3339),
		Body: fmt.Sprintf("Your stay at %s begins tomorrow (%s). We look forward to welcoming you! Booking ID: %s",
			s.hotel, booking.CheckInDate, booking.ID),
	}

	task, opts, err := NewCheckinReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
