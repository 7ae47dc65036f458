// File: database/repository/directory/queries.go
package directoryRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classgrid/models"
)

func (r *mongoDirectoryRepo) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.users.Find(ctx, bson.M{"role": "teacher"}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teachers []models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *mongoDirectoryRepo) GetTeachersByIDs(ctx context.Context, ids []string) ([]models.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.users.Find(ctx, bson.M{
		"role": "teacher",
		"id":   bson.M{"$in": ids},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teachers []models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *mongoDirectoryRepo) ListActiveClasses(ctx context.Context) ([]models.ClassRoom, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.classes.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.ClassRoom
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *mongoDirectoryRepo) GetClassByID(ctx context.Context, id string) (*models.ClassRoom, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var class models.ClassRoom
	if err := r.classes.FindOne(ctx, bson.M{"id": id}).Decode(&class); err != nil {
		return nil, err
	}
	return &class, nil
}
