package models

// ReminderPayload is the body of a delayed appointment-reminder task.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Target        string `json:"target"` // "client" or "barber"
	ID            string `json:"id"`     // recipient id
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
