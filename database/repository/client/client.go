package clientRepo

import "barberbook/models"

// ClientRepository provides read access to client records.
type ClientRepository interface {
	GetByID(clientID string) (*models.Client, error)
}
