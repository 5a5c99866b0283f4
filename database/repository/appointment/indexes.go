package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
//
// The partial unique index on (barber_id, date, start) over active documents
// is what makes the booking guard race-free: two concurrent inserts for the
// same slot cannot both commit, whatever the outcome of the preceding
// read-side conflict check. Cancelled appointments drop out of the index
// (active=false), so a freed slot can be rebooked.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "barber_id", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}).
				SetName("active_slot_unique_idx"),
		},
		// Primary read pattern: a barber's day.
		{
			Keys:    bson.D{{Key: "barber_id", Value: 1}, {Key: "date", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("barber_date_active_idx"),
		},
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}},
			Options: options.Index().SetName("client_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
