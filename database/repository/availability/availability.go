package availabilityRepo

import "barberbook/models"

// AvailabilityRepository provides access to barbers' weekly recurring rules.
type AvailabilityRepository interface {
	GetRulesForBarber(barberID string) ([]models.AvailabilityRule, error)
	ReplaceWeeklySchedule(barberID string, rules []models.AvailabilityRule) error
	EnsureIndexes() error
}
