package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a client's reservation of a barber for one treatment.
// Appointments are never deleted; cancellation flips Status (and Active,
// which backs the partial unique index keeping a slot single-booked).
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	BarberID        string            `bson:"barber_id" json:"barberId"`
	ClientID        string            `bson:"client_id" json:"clientId"`
	TreatmentID     string            `bson:"treatment_id" json:"treatmentId"`
	Date            string            `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start           int               `bson:"start" json:"start"` // minutes from midnight
	End             int               `bson:"end" json:"end"`
	DurationMinutes int               `bson:"duration_minutes" json:"durationMinutes"` // copied from the treatment at creation
	Status          AppointmentStatus `bson:"status" json:"status"`
	Active          bool              `bson:"active" json:"-"` // false only when cancelled
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
}

// Overlaps reports whether the appointment's interval intersects
// [start, end). Intervals are half-open, so touching does not overlap.
func (a *Appointment) Overlaps(start, end int) bool {
	return start < a.End && a.Start < end
}
