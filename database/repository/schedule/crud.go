// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classgrid/models"
)

func (r *mongoScheduleRepo) List(ctx context.Context, filter models.ScheduleFilter) ([]models.ClassSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.TeacherID != "" {
		query["teachers.id"] = filter.TeacherID
	}
	if filter.ClassID != "" {
		query["classId"] = filter.ClassID
	}
	if filter.DayOfWeek != nil {
		query["dayOfWeek"] = *filter.DayOfWeek
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "dayOfWeek", Value: 1},
		{Key: "startTime", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.ClassSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *mongoScheduleRepo) ListByDay(ctx context.Context, dayOfWeek int) ([]models.ClassSchedule, error) {
	return r.List(ctx, models.ScheduleFilter{DayOfWeek: &dayOfWeek})
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.ClassSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.ClassSchedule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *mongoScheduleRepo) Create(ctx context.Context, schedule *models.ClassSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, schedule)
	return err
}

func (r *mongoScheduleRepo) Update(ctx context.Context, id string, set map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
