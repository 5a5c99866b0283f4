package models

import "time"

// AvailabilityRule is one day of a barber's recurring weekly schedule.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM).
// At most one rule exists per (barber, dayOfWeek).
type AvailabilityRule struct {
	ID          string    `bson:"id" json:"id"`
	BarberID    string    `bson:"barber_id" json:"barberId"`
	DayOfWeek   int       `bson:"day_of_week" json:"dayOfWeek"` // 0 = Sunday ... 6 = Saturday
	Start       int       `bson:"start" json:"start"`
	End         int       `bson:"end" json:"end"`
	IsAvailable bool      `bson:"is_available" json:"isAvailable"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt,omitzero"`
}

// Window is the open interval of clock time during which a barber accepts
// bookings on a given date. Both bounds are minutes from midnight.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// WeeklyScheduleInput is one rule of an admin "set weekly schedule" request.
// Clock times arrive as "HH:MM" strings and are converted during validation.
type WeeklyScheduleInput struct {
	DayOfWeek   int    `json:"dayOfWeek" binding:"min=0,max=6"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}
