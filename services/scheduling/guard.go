package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Guard verifies a candidate slot is still free and commits an appointment
// for it. The read-side checks weed out conflicts cheaply; the storage-level
// unique index on (barber, date, start) over active appointments is the
// actual correctness guarantee against two callers racing through the same
// sequence. A uniqueness violation at write time is reported identically to
// a conflict found at read time.
type Guard struct {
	Appointments appointmentRepo.AppointmentRepository
	Calendar     *Calendar
}

// Reserve books the slot starting at start (minutes from midnight) on date
// for the client, or fails with ErrSlotConflict. The appointment is created
// with status pending.
func (g *Guard) Reserve(ctx context.Context, barberID, date string, start, durationMinutes int, clientID, treatmentID string) (*models.Appointment, error) {
	logger := utils.GetLogger()
	end := start + durationMinutes

	// The schedule may have been edited between the client fetching slots
	// and submitting, so the window is re-checked here.
	window, err := g.Calendar.WindowFor(barberID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve availability window: %w", err)
	}
	if window == nil || start < window.Start || end > window.End {
		return nil, ErrSlotConflict
	}

	existing, err := g.Appointments.ListActiveForDay(barberID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing appointments: %w", err)
	}
	for i := range existing {
		if existing[i].Overlaps(start, end) {
			return nil, ErrSlotConflict
		}
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		BarberID:        barberID,
		ClientID:        clientID,
		TreatmentID:     treatmentID,
		Date:            date,
		Start:           start,
		End:             end,
		DurationMinutes: durationMinutes,
		Status:          models.StatusPending,
		Active:          true,
		CreatedAt:       time.Now(),
	}

	if err := g.Appointments.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			logger.Info("lost booking race at insert",
				zap.String("barberID", barberID),
				zap.String("date", date),
				zap.Int("start", start))
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	return appt, nil
}
