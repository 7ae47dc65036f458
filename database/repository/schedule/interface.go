// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"log"

	"classgrid/config"
	"classgrid/database"
	"classgrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository is the persistence contract for recurring class
// schedules.
type ScheduleRepository interface {
	List(ctx context.Context, filter models.ScheduleFilter) ([]models.ClassSchedule, error)
	ListByDay(ctx context.Context, dayOfWeek int) ([]models.ClassSchedule, error)
	GetByID(ctx context.Context, id string) (*models.ClassSchedule, error)
	Create(ctx context.Context, schedule *models.ClassSchedule) error
	Update(ctx context.Context, id string, set map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("schedule repo: failed to ensure indexes: %v", err)
	}
	return repo
}
