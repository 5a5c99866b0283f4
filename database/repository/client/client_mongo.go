package clientRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new instance of MongoClientRepo.
func NewMongoClientRepo() ClientRepository {
	return &MongoClientRepo{
		coll: database.DB().Collection("clients"),
	}
}

// GetByID retrieves a client document by ID.
func (repo *MongoClientRepo) GetByID(clientID string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var client models.Client
	if err := repo.coll.FindOne(ctx, bson.M{"id": clientID}).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("client with id %s not found", clientID)
		}
		return nil, fmt.Errorf("error fetching client with id %s: %w", clientID, err)
	}
	return &client, nil
}
