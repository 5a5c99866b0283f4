package scheduling

import (
	"context"

	"barberbook/models"
)

// BookAppointmentRequest carries everything needed to reserve a slot.
// ClientID is only honoured for staff actors booking on a client's behalf;
// client actors always book for themselves.
type BookAppointmentRequest struct {
	BarberID    string `json:"barberId" binding:"required"`
	TreatmentID string `json:"treatmentId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"` // "HH:MM" slot start
	ClientID    string `json:"clientId,omitempty"`
}

// AvailableSlotsResult is the outcome of a slot listing. A closed or
// unavailable barber yields an empty slot list and a human-readable reason,
// not an error.
type AvailableSlotsResult struct {
	Slots             []models.Slot `json:"slots"`
	AvailabilityError string        `json:"availabilityError,omitempty"`
}

// SchedulingService is the public entry point for slot listing and the
// appointment lifecycle.
type SchedulingService interface {
	ListAvailableSlots(barberID, date, treatmentID string) (*AvailableSlotsResult, error)
	BookAppointment(ctx context.Context, actor Actor, req BookAppointmentRequest) (*models.Appointment, error)
	ConfirmAppointment(actor Actor, appointmentID string) (*models.Appointment, error)
	CompleteAppointment(actor Actor, appointmentID string) (*models.Appointment, error)
	CancelAppointment(actor Actor, appointmentID string) (*models.Appointment, error)
	AppointmentsForClient(actor Actor) ([]models.Appointment, error)
	AppointmentsForBarberDay(actor Actor, barberID, date string) ([]models.Appointment, error)
	WeeklySchedule(barberID string) ([]models.AvailabilityRule, error)
	SetWeeklySchedule(actor Actor, barberID string, inputs []models.WeeklyScheduleInput) ([]models.AvailabilityRule, error)
}
