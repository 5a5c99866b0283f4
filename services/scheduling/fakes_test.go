package scheduling

import (
	"context"
	"fmt"
	"sort"
	"sync"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"
)

// memAvailabilityRepo is an in-memory AvailabilityRepository.
type memAvailabilityRepo struct {
	mu    sync.Mutex
	rules map[string][]models.AvailabilityRule // barberID -> rules
}

func newMemAvailabilityRepo() *memAvailabilityRepo {
	return &memAvailabilityRepo{rules: make(map[string][]models.AvailabilityRule)}
}

func (m *memAvailabilityRepo) GetRulesForBarber(barberID string) ([]models.AvailabilityRule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.AvailabilityRule(nil), m.rules[barberID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

func (m *memAvailabilityRepo) ReplaceWeeklySchedule(barberID string, rules []models.AvailabilityRule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules[barberID] = append([]models.AvailabilityRule(nil), rules...)
	return nil
}

func (m *memAvailabilityRepo) EnsureIndexes() error { return nil }

// memAppointmentRepo is an in-memory AppointmentRepository. Insert enforces
// the same uniqueness guarantee as the mongo partial index: at most one
// active appointment per (barber, date, start).
type memAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (m *memAppointmentRepo) Insert(_ context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.appts {
		if existing.Active && appt.Active &&
			existing.BarberID == appt.BarberID &&
			existing.Date == appt.Date &&
			existing.Start == appt.Start {
			return appointmentRepo.ErrDuplicateSlot
		}
	}
	cp := *appt
	m.appts[appt.ID] = &cp
	return nil
}

func (m *memAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAppointmentRepo) SetStatus(id string, status models.AppointmentStatus, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	a.Status = status
	a.Active = active
	return nil
}

func (m *memAppointmentRepo) ListActiveForDay(barberID, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.Active && a.BarberID == barberID && a.Date == date {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (m *memAppointmentRepo) ListForClient(clientID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) EnsureIndexes() error { return nil }

// memBarberRepo is an in-memory BarberRepository.
type memBarberRepo struct {
	barbers map[string]*models.Barber
}

func (m *memBarberRepo) GetByID(barberID string) (*models.Barber, error) {
	b, ok := m.barbers[barberID]
	if !ok {
		return nil, fmt.Errorf("barber with id %s not found", barberID)
	}
	cp := *b
	return &cp, nil
}

// memTreatmentRepo is an in-memory TreatmentRepository.
type memTreatmentRepo struct {
	treatments map[string]*models.Treatment
}

func (m *memTreatmentRepo) GetByID(treatmentID string) (*models.Treatment, error) {
	t, ok := m.treatments[treatmentID]
	if !ok {
		return nil, fmt.Errorf("treatment with id %s not found", treatmentID)
	}
	cp := *t
	return &cp, nil
}

// openAllWeek returns inputs for a schedule open every day with the given
// clock window.
func openAllWeek(start, end string) []models.WeeklyScheduleInput {
	inputs := make([]models.WeeklyScheduleInput, 0, 7)
	for day := 0; day < 7; day++ {
		inputs = append(inputs, models.WeeklyScheduleInput{
			DayOfWeek:   day,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: true,
		})
	}
	return inputs
}
