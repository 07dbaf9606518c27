package agent

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"innkeeper/models"
	"innkeeper/utils"

	"go.uber.org/zap"
)

var (
	dateRe      = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	intRe       = regexp.MustCompile(`\d+`)
	bookingIDRe = regexp.MustCompile(`\bBK[0-9A-F]{8}\b`)
)

var contactKeys = []string{"guest_name", "guest_email", "guest_phone"}

// extractDates pulls check-in and check-out out of free text. Both dates
// must appear as exact YYYY-MM-DD tokens; the first is the check-in, the
// second the check-out. Date-order validation happens at the flow step.
func extractDates(text string) (checkIn, checkOut string, ok bool) {
	dates := dateRe.FindAllString(text, -1)
	if len(dates) < 2 {
		return "", "", false
	}
	return dates[0], dates[1], true
}

// extractRoomType scans for a room-type keyword. Suite and deluxe win over
// the standard default; the boolean reports whether any keyword matched.
func extractRoomType(text string) (models.RoomType, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "suite"):
		return models.RoomSuite, true
	case strings.Contains(lower, "deluxe"):
		return models.RoomDeluxe, true
	case strings.Contains(lower, "standard"):
		return models.RoomStandard, true
	}
	return models.RoomStandard, false
}

// extractGuestCount takes the first integer literal in the text.
func extractGuestCount(text string) (int, bool) {
	m := intRe.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// extractBookingID finds a booking identifier token: "BK" followed by
// exactly eight uppercase hex characters.
func extractBookingID(text string) (string, bool) {
	m := bookingIDRe.FindString(text)
	return m, m != ""
}

// extractContact delegates name/email/phone extraction to the language
// model. Any failure yields empty slots; the flow keeps asking for what is
// still missing instead of crashing.
func (s *DefaultAgentService) extractContact(ctx context.Context, text string) models.BookingSlots {
	fields, err := s.LLM.ExtractJSON(ctx, text, contactKeys)
	if err != nil {
		utils.GetLogger().Debug("contact extraction failed", zap.Error(err))
		return models.BookingSlots{}
	}
	return models.BookingSlots{
		GuestName:  fields["guest_name"],
		GuestEmail: fields["guest_email"],
		GuestPhone: fields["guest_phone"],
	}
}
