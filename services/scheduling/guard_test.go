package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"

	"barberbook/models"
)

func newTestGuard(t *testing.T) (*Guard, *memAppointmentRepo) {
	t.Helper()
	availability := newMemAvailabilityRepo()
	cal := &Calendar{Repo: availability}
	if _, err := cal.SetWeeklySchedule("b1", openAllWeek("09:00", "18:00")); err != nil {
		t.Fatalf("failed to seed schedule: %v", err)
	}
	appts := newMemAppointmentRepo()
	return &Guard{Appointments: appts, Calendar: cal}, appts
}

func TestReserve_Succeeds(t *testing.T) {
	guard, appts := newTestGuard(t)

	appt, err := guard.Reserve(context.Background(), "b1", "2026-03-02", 600, 30, "c1", "t1")
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if appt.Status != models.StatusPending || !appt.Active {
		t.Fatalf("expected pending active appointment, got %+v", appt)
	}
	if appt.End != 630 || appt.DurationMinutes != 30 {
		t.Fatalf("expected end 630, got %+v", appt)
	}

	stored, err := appts.GetByID(appt.ID)
	if err != nil || stored.Start != 600 {
		t.Fatalf("appointment not persisted: %v", err)
	}
}

func TestReserve_OverlapConflicts(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	if _, err := guard.Reserve(ctx, "b1", "2026-03-02", 600, 30, "c1", "t1"); err != nil {
		t.Fatalf("first reserve failed: %v", err)
	}

	// Any overlap with 10:00-10:30 must conflict, including partial ones.
	for _, start := range []int{600, 585, 615} {
		if _, err := guard.Reserve(ctx, "b1", "2026-03-02", start, 30, "c2", "t1"); !errors.Is(err, ErrSlotConflict) {
			t.Fatalf("start %d: expected ErrSlotConflict, got %v", start, err)
		}
	}
}

func TestReserve_TouchingSlotsDoNotConflict(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	if _, err := guard.Reserve(ctx, "b1", "2026-03-02", 600, 30, "c1", "t1"); err != nil {
		t.Fatalf("first reserve failed: %v", err)
	}
	// 09:30-10:00 ends exactly where the first begins; 10:30-11:00 starts
	// exactly where it ends. Neither overlaps.
	if _, err := guard.Reserve(ctx, "b1", "2026-03-02", 570, 30, "c2", "t1"); err != nil {
		t.Fatalf("slot ending at existing start should not conflict: %v", err)
	}
	if _, err := guard.Reserve(ctx, "b1", "2026-03-02", 630, 30, "c3", "t1"); err != nil {
		t.Fatalf("slot starting at existing end should not conflict: %v", err)
	}
}

func TestReserve_RejectsSlotOutsideWindow(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	// Before opening, spilling past closing, and closed day (no window after
	// the schedule is rewritten).
	if _, err := guard.Reserve(ctx, "b1", "2026-03-02", 480, 30, "c1", "t1"); !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("expected conflict before opening, got %v", err)
	}
	if _, err := guard.Reserve(ctx, "b1", "2026-03-02", 1070, 30, "c1", "t1"); !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("expected conflict past closing, got %v", err)
	}

	closed := []models.WeeklyScheduleInput{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: false},
	}
	if _, err := guard.Calendar.SetWeeklySchedule("b1", closed); err != nil {
		t.Fatalf("failed to rewrite schedule: %v", err)
	}
	if _, err := guard.Reserve(ctx, "b1", "2026-03-02", 600, 30, "c1", "t1"); !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("expected conflict on closed day, got %v", err)
	}
}

func TestReserve_ConcurrentCallersGetOneWinner(t *testing.T) {
	guard, appts := newTestGuard(t)

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = guard.Reserve(context.Background(), "b1", "2026-03-02", 600, 30, "c1", "t1")
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotConflict):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Fatalf("expected exactly one winner, got %d", won)
	}

	day, _ := appts.ListActiveForDay("b1", "2026-03-02")
	if len(day) != 1 {
		t.Fatalf("expected one stored appointment, got %d", len(day))
	}
}

func TestReserve_SlotFreesAfterCancel(t *testing.T) {
	guard, appts := newTestGuard(t)
	ctx := context.Background()

	appt, err := guard.Reserve(ctx, "b1", "2026-03-02", 600, 30, "c1", "t1")
	if err != nil {
		t.Fatalf("first reserve failed: %v", err)
	}
	if err := appts.SetStatus(appt.ID, models.StatusCancelled, false); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	if _, err := guard.Reserve(ctx, "b1", "2026-03-02", 600, 30, "c2", "t1"); err != nil {
		t.Fatalf("cancelled slot should be bookable again: %v", err)
	}
}
