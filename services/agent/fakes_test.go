package agent

import (
	"context"
	"errors"
	"sync"

	bookingRepo "innkeeper/database/repository/booking"
	"innkeeper/models"
)

// memStateStore is an in-memory StateStore used by flow tests.
type memStateStore struct {
	mu      sync.Mutex
	states  map[string]models.ConversationState
	saveErr error
	getErr  error
}

func newMemStateStore() *memStateStore {
	return &memStateStore{states: make(map[string]models.ConversationState)}
}

func (m *memStateStore) Get(_ context.Context, userID string) (*models.ConversationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if s, ok := m.states[userID]; ok {
		copied := s
		return &copied, nil
	}
	return &models.ConversationState{UserID: userID}, nil
}

func (m *memStateStore) Save(_ context.Context, state *models.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.states[state.UserID] = *state
	return nil
}

func (m *memStateStore) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID) // deleting a missing key is a no-op
	return nil
}

func (m *memStateStore) step(userID string) models.Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[userID].Step
}

// memBookingRepo is an in-memory BookingRepository.
type memBookingRepo struct {
	mu        sync.Mutex
	bookings  map[string]models.Booking
	createErr error
	updateErr error
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]models.Booking)}
}

func (m *memBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *memBookingRepo) GetByID(_ context.Context, bookingID string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.bookings[bookingID]; ok {
		copied := b
		return &copied, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *memBookingRepo) Update(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.bookings[booking.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *memBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) single() models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		return b
	}
	return models.Booking{}
}

// fakeLLM is a canned LanguageModel; the zero value fails every call, which
// exercises the fallback paths.
type fakeLLM struct {
	intent      models.Intent
	intentErr   error
	completion  string
	completeErr error
	fields      map[string]string
	extractErr  error
}

func newFailingLLM() *fakeLLM {
	err := errors.New("model unavailable")
	return &fakeLLM{intentErr: err, completeErr: err, extractErr: err}
}

func (f *fakeLLM) Complete(context.Context, string) (string, error) {
	return f.completion, f.completeErr
}

func (f *fakeLLM) ClassifyIntent(context.Context, string) (models.Intent, error) {
	return f.intent, f.intentErr
}

func (f *fakeLLM) ExtractJSON(context.Context, string, []string) (map[string]string, error) {
	return f.fields, f.extractErr
}

// fakeReminders records scheduled bookings.
type fakeReminders struct {
	scheduled []string
	err       error
}

func (f *fakeReminders) Schedule(_ context.Context, booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, booking.ID)
	return nil
}

func newTestAgent() (*DefaultAgentService, *memStateStore, *memBookingRepo, *fakeLLM) {
	states := newMemStateStore()
	bookings := newMemBookingRepo()
	llm := newFailingLLM()
	svc := &DefaultAgentService{
		States:   states,
		Bookings: bookings,
		LLM:      llm,
		Hotel: models.HotelInfo{
			Name:         "Grand Palace Hotel",
			Address:      "123 Luxury Street, City Center",
			CheckInTime:  "3:00 PM",
			CheckOutTime: "11:00 AM",
			Amenities:    []string{"Free WiFi", "Swimming Pool", "Parking"},
			RoomTypes: map[models.RoomType]models.RoomInfo{
				models.RoomStandard: {Price: 100, Capacity: 2},
				models.RoomDeluxe:   {Price: 150, Capacity: 3},
				models.RoomSuite:    {Price: 250, Capacity: 4},
			},
		},
		Rates: testRates(),
	}
	return svc, states, bookings, llm
}
