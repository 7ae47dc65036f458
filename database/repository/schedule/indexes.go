// File: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the listing and conflict queries rely
// on. Safe to call on every startup.
func (r *mongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "teachers.id", Value: 1}}},
		{Keys: bson.D{{Key: "classId", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
