package models

import "time"

// Step is a position inside a multi-turn flow. The step value alone decides
// routing while a flow is active, so a user is in at most one flow at a time.
type Step string

const (
	StepNone Step = ""

	// Booking flow.
	StepBookingDates  Step = "booking_dates"
	StepBookingRoom   Step = "booking_room"
	StepBookingGuests Step = "booking_guests"

	// Reschedule flow.
	StepRescheduleBookingID Step = "reschedule_booking_id"
	StepRescheduleDates     Step = "reschedule_dates"
)

// BookingSlots is the partial record of fields extracted turn-over-turn.
// A zero value means the slot has not been filled yet.
type BookingSlots struct {
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	RoomType     string `json:"room_type,omitempty"`
	NumGuests    int    `json:"num_guests,omitempty"`
	GuestName    string `json:"guest_name,omitempty"`
	GuestEmail   string `json:"guest_email,omitempty"`
	GuestPhone   string `json:"guest_phone,omitempty"`
	BookingID    string `json:"booking_id,omitempty"` // reschedule target
}

// Merge fills empty slots from other, never overwriting a value that is
// already present.
func (s *BookingSlots) Merge(other BookingSlots) {
	if s.CheckInDate == "" {
		s.CheckInDate = other.CheckInDate
	}
	if s.CheckOutDate == "" {
		s.CheckOutDate = other.CheckOutDate
	}
	if s.RoomType == "" {
		s.RoomType = other.RoomType
	}
	if s.NumGuests == 0 {
		s.NumGuests = other.NumGuests
	}
	if s.GuestName == "" {
		s.GuestName = other.GuestName
	}
	if s.GuestEmail == "" {
		s.GuestEmail = other.GuestEmail
	}
	if s.GuestPhone == "" {
		s.GuestPhone = other.GuestPhone
	}
	if s.BookingID == "" {
		s.BookingID = other.BookingID
	}
}

// ConversationState is the per-user dialogue position persisted between
// turns. It is created on a user's first flow turn and cleared when the
// active flow reaches its terminal step.
type ConversationState struct {
	UserID    string       `json:"user_id"`
	Step      Step         `json:"step"`
	Slots     BookingSlots `json:"slots"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// InFlow reports whether a multi-turn flow is in progress.
func (c *ConversationState) InFlow() bool {
	return c.Step != StepNone
}
