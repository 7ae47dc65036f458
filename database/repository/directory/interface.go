// File: database/repository/directory/interface.go
package directoryRepo

import (
	"context"

	"classgrid/config"
	"classgrid/database"
	"classgrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DirectoryRepository is the read-only contract over the center's user
// and class directories. The scheduling core only consumes it to populate
// filter dropdowns, form options and teacher decorations.
type DirectoryRepository interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeachersByIDs(ctx context.Context, ids []string) ([]models.Teacher, error)
	ListActiveClasses(ctx context.Context) ([]models.ClassRoom, error)
	GetClassByID(ctx context.Context, id string) (*models.ClassRoom, error)
}

type mongoDirectoryRepo struct {
	users   *mongo.Collection
	classes *mongo.Collection
}

// NewMongoDirectoryRepo constructs a new MongoDB DirectoryRepository.
func NewMongoDirectoryRepo() DirectoryRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoDirectoryRepo{
		users:   db.Collection("users"),
		classes: db.Collection("classes"),
	}
}
