// File: services/directory/service.go
package directory

import (
	"context"
	"fmt"

	"classgrid/models"
	"classgrid/utils"
)

// ListTeachers returns the teacher directory with display colors
// resolved: a stored preference wins, otherwise the color is derived from
// the teacher's ID so it stays stable across sessions.
func (s *DefaultDirectoryService) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.Repo.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	for i := range teachers {
		if teachers[i].Color == "" {
			teachers[i].Color = utils.ColorForID(teachers[i].ID)
		}
	}
	return teachers, nil
}

// ListClasses returns the active class directory.
func (s *DefaultDirectoryService) ListClasses(ctx context.Context) ([]models.ClassRoom, error) {
	classes, err := s.Repo.ListActiveClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}
