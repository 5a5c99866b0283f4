package treatmentRepo

import "barberbook/models"

// TreatmentRepository provides read access to treatment records.
type TreatmentRepository interface {
	GetByID(treatmentID string) (*models.Treatment, error)
}
