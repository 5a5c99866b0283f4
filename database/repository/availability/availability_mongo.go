package availabilityRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &MongoAvailabilityRepo{
		coll: database.DB().Collection("availability"),
	}
}

// GetRulesForBarber retrieves all weekly rules for a barber, ordered by day of week.
func (repo *MongoAvailabilityRepo) GetRulesForBarber(barberID string) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"barber_id": barberID}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching availability rules for barber %s: %w", barberID, err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	for cursor.Next(ctx) {
		var r models.AvailabilityRule
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("error decoding availability rule: %w", err)
		}
		rules = append(rules, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	sort.Slice(rules, func(i, j int) bool { return rules[i].DayOfWeek < rules[j].DayOfWeek })
	return rules, nil
}

// ReplaceWeeklySchedule swaps out all rules for a barber with the given set.
// Delete-then-insert, matching how the admin "set weekly schedule" action
// works: rules are never partially patched. Callers validate the set first so
// a barber is never left with zero rules for a non-empty input.
func (repo *MongoAvailabilityRepo) ReplaceWeeklySchedule(barberID string, rules []models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteMany(ctx, bson.M{"barber_id": barberID}); err != nil {
		return fmt.Errorf("error clearing schedule for barber %s: %w", barberID, err)
	}

	if len(rules) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(rules))
	for _, r := range rules {
		docs = append(docs, r)
	}
	if _, err := repo.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error inserting schedule for barber %s: %w", barberID, err)
	}
	return nil
}
