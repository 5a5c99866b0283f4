package scheduling

import "barberbook/models"

// legalTransitions is the appointment state graph. completed and cancelled
// are terminal.
var legalTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the appointment to the target status, or fails with
// InvalidTransitionError. It enforces the state graph only; who is allowed
// to request which edge is the orchestrator's concern.
func Transition(appt *models.Appointment, target models.AppointmentStatus) error {
	if !CanTransition(appt.Status, target) {
		return &InvalidTransitionError{From: appt.Status, To: target}
	}
	appt.Status = target
	appt.Active = target != models.StatusCancelled
	return nil
}

// StatusChange describes a committed lifecycle transition, handed to the
// event sink after the new state is persisted.
type StatusChange struct {
	Appointment models.Appointment
	Previous    models.AppointmentStatus
}

// EventSink receives appointment events after they are durably committed.
// Implementations must be non-blocking from the caller's point of view;
// failures never roll back the state change that triggered them.
type EventSink interface {
	AppointmentCreated(appt models.Appointment)
	AppointmentStatusChanged(change StatusChange)
}
