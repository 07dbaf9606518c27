package agent

import (
	"context"
	"fmt"
	"strings"

	"innkeeper/config"
	"innkeeper/models"
	"innkeeper/utils"

	"go.uber.org/zap"
)

// HotelInfoFromConfig assembles the hotel fact sheet handed to the language
// model and the canned FAQ fallback.
func HotelInfoFromConfig() models.HotelInfo {
	cfg := config.AppConfig
	return models.HotelInfo{
		Name:         cfg.HotelName,
		Address:      cfg.HotelAddress,
		CheckInTime:  cfg.CheckInTime,
		CheckOutTime: cfg.CheckOutTime,
		Amenities: []string{
			"Free WiFi", "Swimming Pool", "Fitness Center", "Spa", "Restaurant",
			"24/7 Room Service", "Concierge", "Parking", "Business Center",
		},
		RoomTypes: map[models.RoomType]models.RoomInfo{
			models.RoomStandard: {Price: cfg.RateStandard, Capacity: 2, Description: "Comfortable standard room with city view"},
			models.RoomDeluxe:   {Price: cfg.RateDeluxe, Capacity: 3, Description: "Spacious deluxe room with premium amenities"},
			models.RoomSuite:    {Price: cfg.RateSuite, Capacity: 4, Description: "Luxury suite with separate living area"},
		},
	}
}

// handleInquiry answers a free-form question: the language model gets the
// hotel fact sheet as context, and on any failure the keyword table takes
// over so the guest always gets an answer.
func (s *DefaultAgentService) handleInquiry(ctx context.Context, text string) string {
	answer, err := s.LLM.Complete(ctx, s.inquiryPrompt(text))
	if err != nil {
		utils.GetLogger().Warn("inquiry completion failed, using canned answers", zap.Error(err))
		return s.cannedAnswer(text)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return s.cannedAnswer(text)
	}
	return answer
}

func (s *DefaultAgentService) inquiryPrompt(question string) string {
	var rooms strings.Builder
	for roomType, info := range s.Hotel.RoomTypes {
		fmt.Fprintf(&rooms, "- %s: $%.0f/night, sleeps %d. %s\n",
			roomType, info.Price, info.Capacity, info.Description)
	}

	return fmt.Sprintf(`You are a helpful hotel concierge for %s, %s.
Answer this guest's question using only the hotel information below.
Keep the reply short and friendly.

Check-in time: %s
Check-out time: %s
Amenities: %s
Rooms:
%s
Guest question: %q`,
		s.Hotel.Name, s.Hotel.Address,
		s.Hotel.CheckInTime, s.Hotel.CheckOutTime,
		strings.Join(s.Hotel.Amenities, ", "), rooms.String(), question)
}

// cannedAnswer is the keyword fallback used when the language model is
// unavailable.
func (s *DefaultAgentService) cannedAnswer(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "check-in") || strings.Contains(lower, "checkin"):
		return fmt.Sprintf("Check-in time is %s.", s.Hotel.CheckInTime)
	case strings.Contains(lower, "check-out") || strings.Contains(lower, "checkout"):
		return fmt.Sprintf("Check-out time is %s.", s.Hotel.CheckOutTime)
	case strings.Contains(lower, "amenities") || strings.Contains(lower, "facilities"):
		return "We offer " + strings.Join(s.Hotel.Amenities, ", ") + "."
	case strings.Contains(lower, "pool"):
		return "Yes, we have a swimming pool available for all guests."
	case strings.Contains(lower, "wifi") || strings.Contains(lower, "internet"):
		return "Free WiFi is available throughout the hotel."
	case strings.Contains(lower, "parking"):
		return "Complimentary parking is available for all guests."
	}
	return "I'm sorry, I couldn't process your request. Please try asking about check-in times, amenities, or other hotel services."
}
