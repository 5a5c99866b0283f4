package scheduling

import (
	"fmt"
	"time"

	availabilityRepo "barberbook/database/repository/availability"
	"barberbook/models"

	"github.com/google/uuid"
)

// Calendar answers whether a barber is nominally open on a date, and during
// which clock-time window. It models a recurring weekly schedule only; there
// are no date-level overrides (holidays, one-off closures).
type Calendar struct {
	Repo availabilityRepo.AvailabilityRepository
}

// RulesForBarber returns the barber's weekly rules ordered by day of week.
// Days without a rule are simply absent and treated as closed.
func (c *Calendar) RulesForBarber(barberID string) ([]models.AvailabilityRule, error) {
	return c.Repo.GetRulesForBarber(barberID)
}

// SetWeeklySchedule validates and replaces the barber's entire weekly
// schedule. Validation happens before any write, so a rejected submission
// leaves the existing schedule untouched.
func (c *Calendar) SetWeeklySchedule(barberID string, inputs []models.WeeklyScheduleInput) ([]models.AvailabilityRule, error) {
	if len(inputs) == 0 {
		return nil, NewValidationError("schedule must contain at least one rule")
	}

	seen := make(map[int]bool, len(inputs))
	rules := make([]models.AvailabilityRule, 0, len(inputs))
	now := time.Now()

	for _, in := range inputs {
		if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
			return nil, NewValidationError("dayOfWeek %d out of range", in.DayOfWeek)
		}
		if seen[in.DayOfWeek] {
			return nil, NewValidationError("duplicate rule for dayOfWeek %d", in.DayOfWeek)
		}
		seen[in.DayOfWeek] = true

		start, err := models.MinutesFromClock(in.StartTime)
		if err != nil {
			return nil, NewValidationError("dayOfWeek %d: %v", in.DayOfWeek, err)
		}
		end, err := models.MinutesFromClock(in.EndTime)
		if err != nil {
			return nil, NewValidationError("dayOfWeek %d: %v", in.DayOfWeek, err)
		}
		if in.IsAvailable && start >= end {
			return nil, NewValidationError("dayOfWeek %d: startTime must be before endTime", in.DayOfWeek)
		}

		rules = append(rules, models.AvailabilityRule{
			ID:          uuid.New().String(),
			BarberID:    barberID,
			DayOfWeek:   in.DayOfWeek,
			Start:       start,
			End:         end,
			IsAvailable: in.IsAvailable,
			CreatedAt:   now,
		})
	}

	if err := c.Repo.ReplaceWeeklySchedule(barberID, rules); err != nil {
		return nil, fmt.Errorf("failed to replace weekly schedule: %w", err)
	}
	return rules, nil
}

// WindowFor returns the open window for a barber on a concrete date, or nil
// if the barber is closed that day. The date is "YYYY-MM-DD".
func (c *Calendar) WindowFor(barberID, date string) (*models.Window, error) {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, NewValidationError("invalid date %q", date)
	}

	rules, err := c.Repo.GetRulesForBarber(barberID)
	if err != nil {
		return nil, err
	}

	weekday := int(day.Weekday())
	for _, r := range rules {
		if r.DayOfWeek == weekday {
			if !r.IsAvailable {
				return nil, nil
			}
			return &models.Window{Start: r.Start, End: r.End}, nil
		}
	}
	return nil, nil
}

// EnsureDefaultSchedule seeds the shop's stock schedule (Sunday-Thursday
// 09:00-18:00, closed Friday and Saturday) for a barber with no rules yet.
func (c *Calendar) EnsureDefaultSchedule(barberID string) error {
	rules, err := c.Repo.GetRulesForBarber(barberID)
	if err != nil {
		return err
	}
	if len(rules) > 0 {
		return nil
	}

	inputs := make([]models.WeeklyScheduleInput, 0, 7)
	for day := 0; day < 7; day++ {
		inputs = append(inputs, models.WeeklyScheduleInput{
			DayOfWeek:   day,
			StartTime:   "09:00",
			EndTime:     "18:00",
			IsAvailable: day != 5 && day != 6,
		})
	}
	_, err = c.SetWeeklySchedule(barberID, inputs)
	return err
}
