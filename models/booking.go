package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoomType identifies one of the hotel's room categories.
type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
)

// ParseRoomType maps free text to a room type. The boolean reports whether
// a known type was actually mentioned.
func ParseRoomType(s string) (RoomType, bool) {
	switch RoomType(strings.ToLower(strings.TrimSpace(s))) {
	case RoomSuite:
		return RoomSuite, true
	case RoomDeluxe:
		return RoomDeluxe, true
	case RoomStandard:
		return RoomStandard, true
	}
	return RoomStandard, false
}

// BookingStatus tracks the lifecycle of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a hotel reservation record.
type Booking struct {
	ID           string        `bson:"id" json:"id"`                       // e.g. "BK1A2B3C4D"
	UserID       string        `bson:"user_id" json:"user_id"`             // messaging-platform user id
	CheckInDate  string        `bson:"check_in_date" json:"check_in_date"` // "YYYY-MM-DD"
	CheckOutDate string        `bson:"check_out_date" json:"check_out_date"`
	RoomType     RoomType      `bson:"room_type" json:"room_type"`
	NumGuests    int           `bson:"num_guests" json:"num_guests"`
	GuestName    string        `bson:"guest_name,omitempty" json:"guest_name,omitempty"`
	GuestEmail   string        `bson:"guest_email,omitempty" json:"guest_email,omitempty"`
	GuestPhone   string        `bson:"guest_phone,omitempty" json:"guest_phone,omitempty"`
	TotalPrice   float64       `bson:"total_price" json:"total_price"`
	Status       BookingStatus `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

// NewBookingID generates a booking identifier in the "BK" + 8 uppercase hex
// format the reschedule and cancel flows scan for.
func NewBookingID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "BK" + strings.ToUpper(raw[:8])
}

// Nights returns the stay length in whole days.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckInDate, b.CheckOutDate)
}

// NightsBetween computes check-out minus check-in in days for two
// "YYYY-MM-DD" strings. Malformed input yields 0; callers reject
// non-positive values before pricing.
func NightsBetween(checkIn, checkOut string) int {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}
