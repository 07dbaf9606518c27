package models

// ReminderPayload is the asynq task body for a scheduled check-in reminder DM.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	FireDate  string `json:"fireDate"`
	Body      string `json:"body"`
}
