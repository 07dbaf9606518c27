package agent

import (
	"context"
	"sync"

	bookingRepo "innkeeper/database/repository/booking"
	"innkeeper/models"
	ai "innkeeper/services/intelligence"
)

// Service is the conversational agent's entry point. ProcessMessage runs a
// full turn (classify, extract, mutate state, persist) and always returns a
// guest-facing reply; failures degrade to an apology rather than an error.
type Service interface {
	ProcessMessage(ctx context.Context, userID, text string) string
}

// ReminderScheduler queues a check-in reminder for a freshly created
// booking. Enqueue failures are logged, never surfaced to the guest.
type ReminderScheduler interface {
	Schedule(ctx context.Context, booking *models.Booking) error
}

// DefaultAgentService implements Service.
type DefaultAgentService struct {
	States    ai.StateStore
	Bookings  bookingRepo.BookingRepository
	LLM       ai.LanguageModel
	Hotel     models.HotelInfo
	Rates     RateTable
	Reminders ReminderScheduler // optional

	// userLocks serializes turns per user; the state store has no
	// optimistic-concurrency guarantee.
	userLocks sync.Map
}

func (s *DefaultAgentService) lockUser(userID string) *sync.Mutex {
	mu, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
