// File: services/directory/interface.go
package directory

import (
	"context"

	directoryRepo "classgrid/database/repository/directory"
	"classgrid/models"
)

// DirectoryService exposes the read-only teacher and class directories
// consumed by the scheduling UI (filter dropdowns and form options).
type DirectoryService interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	ListClasses(ctx context.Context) ([]models.ClassRoom, error)
}

// DefaultDirectoryService implements DirectoryService.
type DefaultDirectoryService struct {
	Repo directoryRepo.DirectoryRepository
}
