package barberRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBarberRepo implements BarberRepository using MongoDB.
type MongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo constructs a new instance of MongoBarberRepo.
func NewMongoBarberRepo() BarberRepository {
	return &MongoBarberRepo{
		coll: database.DB().Collection("barbers"),
	}
}

// GetByID retrieves a barber document by ID.
func (repo *MongoBarberRepo) GetByID(barberID string) (*models.Barber, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var barber models.Barber
	if err := repo.coll.FindOne(ctx, bson.M{"id": barberID}).Decode(&barber); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("barber with id %s not found", barberID)
		}
		return nil, fmt.Errorf("error fetching barber with id %s: %w", barberID, err)
	}
	return &barber, nil
}
