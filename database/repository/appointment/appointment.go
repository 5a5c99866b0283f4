package appointmentRepo

import (
	"context"
	"errors"

	"barberbook/models"
)

// ErrDuplicateSlot is returned by Insert when another active appointment
// already holds the same (barber, date, start). It is the storage-level
// signal that a booking race was lost.
var ErrDuplicateSlot = errors.New("an active appointment already exists for this slot")

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository provides access to appointment records.
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	SetStatus(id string, status models.AppointmentStatus, active bool) error
	ListActiveForDay(barberID, date string) ([]models.Appointment, error)
	ListForClient(clientID string) ([]models.Appointment, error)
	EnsureIndexes() error
}
