package scheduling

import (
	"context"
	"fmt"

	appointmentRepo "barberbook/database/repository/appointment"
	barberRepo "barberbook/database/repository/barber"
	treatmentRepo "barberbook/database/repository/treatment"
	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// DefaultStepMinutes is used when no slot step is configured.
const DefaultStepMinutes = 30

// DefaultSchedulingService composes the calendar, the slot generator and the
// booking guard behind the public scheduling API.
type DefaultSchedulingService struct {
	Barbers      barberRepo.BarberRepository
	Treatments   treatmentRepo.TreatmentRepository
	Appointments appointmentRepo.AppointmentRepository
	Calendar     *Calendar
	Guard        *Guard
	Cache        SlotCache
	Events       EventSink
	StepMinutes  int
}

func (s *DefaultSchedulingService) step() int {
	if s.StepMinutes > 0 {
		return s.StepMinutes
	}
	return DefaultStepMinutes
}

// ListAvailableSlots returns every slot a client could still book for the
// barber, date and treatment. Slots overlapping an existing non-cancelled
// appointment are filtered out here so callers only ever see truly free
// times; the guard remains the final authority at booking time.
func (s *DefaultSchedulingService) ListAvailableSlots(barberID, date, treatmentID string) (*AvailableSlotsResult, error) {
	barber, err := s.Barbers.GetByID(barberID)
	if err != nil {
		return nil, err
	}
	if !barber.Available {
		return &AvailableSlotsResult{AvailabilityError: "This barber is not accepting bookings right now"}, nil
	}

	if s.Cache != nil {
		if slots, ok := s.Cache.Get(barberID, date, treatmentID); ok {
			return &AvailableSlotsResult{Slots: slots}, nil
		}
	}

	treatment, err := s.Treatments.GetByID(treatmentID)
	if err != nil {
		return nil, err
	}
	if treatment.DurationMinutes <= 0 {
		return nil, fmt.Errorf("treatment %s has no duration", treatmentID)
	}

	window, err := s.Calendar.WindowFor(barberID, date)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return &AvailableSlotsResult{AvailabilityError: "The barber is closed on this day"}, nil
	}

	booked, err := s.Appointments.ListActiveForDay(barberID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]models.Slot, 0)
	for _, start := range GenerateSlots(*window, s.step(), treatment.DurationMinutes) {
		end := start + treatment.DurationMinutes
		free := true
		for i := range booked {
			if booked[i].Overlaps(start, end) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, models.Slot{
				BarberID: barberID,
				Date:     date,
				Start:    start,
				End:      end,
				Label:    models.ClockFromMinutes(start),
			})
		}
	}

	if s.Cache != nil {
		s.Cache.Set(barberID, date, treatmentID, slots)
	}
	return &AvailableSlotsResult{Slots: slots}, nil
}

// BookAppointment reserves a slot through the guard. Write errors are never
// retried here; a conflict means the caller must re-fetch slots and choose
// again.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, actor Actor, req BookAppointmentRequest) (*models.Appointment, error) {
	clientID := actor.ID
	if actor.isStaff() && req.ClientID != "" {
		clientID = req.ClientID
	}

	barber, err := s.Barbers.GetByID(req.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Available {
		return nil, ErrBarberUnavailable
	}

	treatment, err := s.Treatments.GetByID(req.TreatmentID)
	if err != nil {
		return nil, err
	}
	if treatment.DurationMinutes <= 0 {
		return nil, fmt.Errorf("treatment %s has no duration", req.TreatmentID)
	}

	start, err := models.MinutesFromClock(req.Time)
	if err != nil {
		return nil, NewValidationError("invalid slot time %q", req.Time)
	}

	appt, err := s.Guard.Reserve(ctx, req.BarberID, req.Date, start, treatment.DurationMinutes, clientID, req.TreatmentID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Invalidate(req.BarberID, req.Date)
	}
	if s.Events != nil {
		go s.Events.AppointmentCreated(*appt)
	}

	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("barberID", appt.BarberID),
		zap.String("date", appt.Date),
		zap.Int("start", appt.Start))
	return appt, nil
}

// ConfirmAppointment moves a pending appointment to confirmed. Staff only.
func (s *DefaultSchedulingService) ConfirmAppointment(actor Actor, appointmentID string) (*models.Appointment, error) {
	return s.applyTransition(actor, appointmentID, models.StatusConfirmed)
}

// CompleteAppointment marks a confirmed appointment as completed. Staff only.
func (s *DefaultSchedulingService) CompleteAppointment(actor Actor, appointmentID string) (*models.Appointment, error) {
	return s.applyTransition(actor, appointmentID, models.StatusCompleted)
}

// CancelAppointment cancels an appointment. Clients may cancel their own
// pending or confirmed appointments; staff may cancel any. Cancellation is a
// status change, never a deletion, so history stays auditable.
func (s *DefaultSchedulingService) CancelAppointment(actor Actor, appointmentID string) (*models.Appointment, error) {
	return s.applyTransition(actor, appointmentID, models.StatusCancelled)
}

// applyTransition enforces the actor capability gate, then delegates the
// state graph itself to the lifecycle.
func (s *DefaultSchedulingService) applyTransition(actor Actor, appointmentID string, target models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case RoleClient:
		// Clients may only cancel, and only their own appointments.
		if target != models.StatusCancelled || appt.ClientID != actor.ID {
			return nil, ErrForbidden
		}
	case RoleBarber:
		if appt.BarberID != actor.ID {
			return nil, ErrForbidden
		}
	case RoleAdmin:
		// Admins may perform any legal edge.
	default:
		return nil, ErrForbidden
	}

	previous := appt.Status
	if err := Transition(appt, target); err != nil {
		return nil, err
	}
	if err := s.Appointments.SetStatus(appt.ID, appt.Status, appt.Active); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Invalidate(appt.BarberID, appt.Date)
	}
	if s.Events != nil {
		go s.Events.AppointmentStatusChanged(StatusChange{Appointment: *appt, Previous: previous})
	}

	utils.GetLogger().Info("appointment transitioned",
		zap.String("appointmentID", appt.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(appt.Status)),
		zap.String("actorRole", actor.Role))
	return appt, nil
}

// AppointmentsForClient lists the actor's own appointments, newest first.
func (s *DefaultSchedulingService) AppointmentsForClient(actor Actor) ([]models.Appointment, error) {
	return s.Appointments.ListForClient(actor.ID)
}

// AppointmentsForBarberDay lists a barber's non-cancelled appointments for a
// date. Barbers may only view their own day; admins any.
func (s *DefaultSchedulingService) AppointmentsForBarberDay(actor Actor, barberID, date string) ([]models.Appointment, error) {
	if actor.Role == RoleBarber && actor.ID != barberID {
		return nil, ErrForbidden
	}
	if !actor.isStaff() {
		return nil, ErrForbidden
	}
	return s.Appointments.ListActiveForDay(barberID, date)
}

// WeeklySchedule returns the barber's recurring rules. A barber with no
// rules yet gets the shop's stock schedule materialized on first read.
func (s *DefaultSchedulingService) WeeklySchedule(barberID string) ([]models.AvailabilityRule, error) {
	if err := s.Calendar.EnsureDefaultSchedule(barberID); err != nil {
		return nil, err
	}
	return s.Calendar.RulesForBarber(barberID)
}

// SetWeeklySchedule replaces a barber's recurring rules. Barbers may only
// edit their own schedule; admins any. Outstanding appointments are left
// alone: the guard re-checks the window at booking time, and slot listings
// recompute within the cache TTL.
func (s *DefaultSchedulingService) SetWeeklySchedule(actor Actor, barberID string, inputs []models.WeeklyScheduleInput) ([]models.AvailabilityRule, error) {
	if !actor.isStaff() {
		return nil, ErrForbidden
	}
	if actor.Role == RoleBarber && actor.ID != barberID {
		return nil, ErrForbidden
	}
	return s.Calendar.SetWeeklySchedule(barberID, inputs)
}
