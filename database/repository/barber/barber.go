package barberRepo

import "barberbook/models"

// BarberRepository provides read access to barber records. Barber CRUD is
// owned by the surrounding application; the scheduler only looks barbers up.
type BarberRepository interface {
	GetByID(barberID string) (*models.Barber, error)
}
