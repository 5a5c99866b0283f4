package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTreatmentRepo implements TreatmentRepository using MongoDB.
type MongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo constructs a new instance of MongoTreatmentRepo.
func NewMongoTreatmentRepo() TreatmentRepository {
	return &MongoTreatmentRepo{
		coll: database.DB().Collection("treatments"),
	}
}

// GetByID retrieves a treatment document by ID.
func (repo *MongoTreatmentRepo) GetByID(treatmentID string) (*models.Treatment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var treatment models.Treatment
	if err := repo.coll.FindOne(ctx, bson.M{"id": treatmentID}).Decode(&treatment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("treatment with id %s not found", treatmentID)
		}
		return nil, fmt.Errorf("error fetching treatment with id %s: %w", treatmentID, err)
	}
	return &treatment, nil
}
