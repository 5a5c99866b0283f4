package scheduling

import (
	"errors"
	"fmt"

	"barberbook/models"
)

// ErrSlotConflict indicates the caller lost the race for a slot, either at
// the read-side overlap check or at the storage-level unique index. The
// caller should re-fetch available slots and pick again; the service never
// substitutes a different time on its own.
var ErrSlotConflict = errors.New("slot is no longer available")

// ErrBarberUnavailable indicates the barber is globally closed for bookings.
var ErrBarberUnavailable = errors.New("barber is not accepting bookings")

// ErrForbidden indicates the acting identity is not allowed to perform the
// requested operation on this appointment.
var ErrForbidden = errors.New("actor is not allowed to perform this operation")

// ValidationError reports malformed caller input (dates, clock times,
// schedule rules).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError reports an illegal lifecycle edge.
type InvalidTransitionError struct {
	From models.AppointmentStatus
	To   models.AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid appointment transition: %s -> %s", e.From, e.To)
}
