// File: services/scheduler/service.go
package scheduler

import (
	"context"
	"fmt"
	"strings"

	"classgrid/models"
	"classgrid/utils"

	"go.uber.org/zap"
)

// ListSchedules returns decorated schedules matching the filter.
// TeacherID/ClassID/DayOfWeek narrow the repository query; Search is
// applied here as a case-insensitive substring match on class and teacher
// names.
func (s *DefaultScheduleService) ListSchedules(ctx context.Context, filter models.ScheduleFilter) ([]models.ClassSchedule, error) {
	key := listingKey(filter)
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	raw, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	schedules := decorateSchedules(raw)
	schedules = filterBySearch(schedules, filter.Search)

	if s.Cache != nil {
		s.Cache.Set(ctx, key, schedules)
	}
	return schedules, nil
}

// GetSchedule returns one decorated schedule by ID.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, id string) (*models.ClassSchedule, error) {
	schedule, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("schedule %s not found: %w", id, err)
	}
	decorated := decorateSchedule(*schedule)
	return &decorated, nil
}

// CreateSchedule validates the request, resolves class and teacher
// details from the directory, blocks on a same-day conflict, and persists
// the new slot.
func (s *DefaultScheduleService) CreateSchedule(ctx context.Context, req models.CreateScheduleRequest) (*models.ClassSchedule, error) {
	if err := s.validateTimeRange(req.DayOfWeek, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	class, err := s.Directory.GetClassByID(ctx, req.ClassID)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("unknown class %s", req.ClassID))
	}
	teachers, err := s.resolveTeachers(ctx, req.TeacherIDs)
	if err != nil {
		return nil, err
	}

	schedule := models.ClassSchedule{
		ClassID:          class.ID,
		ClassName:        class.Name,
		Teachers:         teachers,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		DayOfWeek:        req.DayOfWeek,
		HasAttendance:    req.HasAttendance,
		EnrolledStudents: class.Enrolled,
		Location:         req.Location,
		Notes:            req.Notes,
	}
	denormalizePrimaryTeacher(&schedule)

	existing, err := s.Repo.ListByDay(ctx, req.DayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts: %w", err)
	}
	if conflict := CheckConflict(schedule, existing, ""); conflict != nil {
		return nil, NewConflictError(conflict)
	}

	if err := s.Repo.Create(ctx, &schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	s.afterMutation(ctx, &schedule)
	return &schedule, nil
}

// UpdateSchedule applies a partial update. The resulting placement is
// re-validated against the current day's schedules (excluding the record
// itself) before the store is touched; on conflict nothing is written.
func (s *DefaultScheduleService) UpdateSchedule(ctx context.Context, id string, req models.UpdateScheduleRequest) (*models.ClassSchedule, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("schedule %s not found: %w", id, err)
	}

	updated := *existing
	set := map[string]interface{}{}

	if req.ClassID != nil && *req.ClassID != existing.ClassID {
		class, err := s.Directory.GetClassByID(ctx, *req.ClassID)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("unknown class %s", *req.ClassID))
		}
		updated.ClassID = class.ID
		updated.ClassName = class.Name
		updated.EnrolledStudents = class.Enrolled
		set["classId"] = class.ID
		set["className"] = class.Name
		set["enrolledStudents"] = class.Enrolled
	}
	if req.TeacherIDs != nil {
		teachers, err := s.resolveTeachers(ctx, *req.TeacherIDs)
		if err != nil {
			return nil, err
		}
		updated.Teachers = teachers
		denormalizePrimaryTeacher(&updated)
		set["teachers"] = teachers
		set["teacherId"] = updated.TeacherID
		set["teacherName"] = updated.TeacherName
		set["teacherColor"] = updated.TeacherColor
	}
	if req.DayOfWeek != nil {
		updated.DayOfWeek = *req.DayOfWeek
		set["dayOfWeek"] = *req.DayOfWeek
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
		set["startTime"] = *req.StartTime
	}
	if req.EndTime != nil {
		updated.EndTime = *req.EndTime
		set["endTime"] = *req.EndTime
	}
	if req.HasAttendance != nil {
		updated.HasAttendance = *req.HasAttendance
		set["hasAttendance"] = *req.HasAttendance
	}
	if req.Location != nil {
		updated.Location = *req.Location
		set["location"] = *req.Location
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
		set["notes"] = *req.Notes
	}

	if len(set) == 0 {
		return existing, nil
	}

	if err := s.validateTimeRange(updated.DayOfWeek, updated.StartTime, updated.EndTime); err != nil {
		return nil, err
	}
	sameDay, err := s.Repo.ListByDay(ctx, updated.DayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts: %w", err)
	}
	if conflict := CheckConflict(updated, sameDay, id); conflict != nil {
		return nil, NewConflictError(conflict)
	}

	if err := s.Repo.Update(ctx, id, set); err != nil {
		return nil, fmt.Errorf("failed to update schedule %s: %w", id, err)
	}
	s.afterMutation(ctx, &updated)
	return &updated, nil
}

// DeleteSchedule removes a schedule and invalidates listings.
func (s *DefaultScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule %s: %w", id, err)
	}
	s.afterMutation(ctx, nil)
	return nil
}

// afterMutation runs the post-commit bookkeeping: listing invalidation
// and, when a schedule is passed, the next reminder enqueue. Reminder
// failures are logged, never surfaced.
func (s *DefaultScheduleService) afterMutation(ctx context.Context, schedule *models.ClassSchedule) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
	if s.Reminders != nil && schedule != nil {
		if err := s.Reminders.EnqueueClassReminder(*schedule); err != nil {
			utils.GetLogger().Warn("failed to enqueue class reminder",
				zap.String("scheduleID", schedule.ID), zap.Error(err))
		}
	}
}

func (s *DefaultScheduleService) validateTimeRange(dayOfWeek int, start, end string) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return NewValidationError(fmt.Sprintf("dayOfWeek %d out of range", dayOfWeek))
	}
	if !ValidClock(start) || !ValidClock(end) {
		return NewValidationError("times must be 24-hour HH:MM strings")
	}
	startMin, endMin := TimeToMinutes(start), TimeToMinutes(end)
	if startMin >= endMin {
		return NewValidationError("startTime must be before endTime")
	}
	if startMin < s.Config.StartHour*60 || endMin > s.Config.EndHour*60 {
		return NewValidationError(fmt.Sprintf("times must fall within the %02d:00-%02d:00 grid",
			s.Config.StartHour, s.Config.EndHour))
	}
	return nil
}

// resolveTeachers maps teacher IDs to embedded refs, preserving request
// order and filling missing colors deterministically.
func (s *DefaultScheduleService) resolveTeachers(ctx context.Context, ids []string) ([]models.TeacherRef, error) {
	found, err := s.Directory.GetTeachersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve teachers: %w", err)
	}
	byID := make(map[string]models.Teacher, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	refs := make([]models.TeacherRef, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, NewValidationError(fmt.Sprintf("unknown teacher %s", id))
		}
		color := t.Color
		if color == "" {
			color = utils.ColorForID(t.ID)
		}
		refs = append(refs, models.TeacherRef{
			ID:     t.ID,
			Name:   t.Name,
			Color:  color,
			Avatar: t.Avatar,
		})
	}
	return refs, nil
}

// decorateSchedules normalizes raw store records into grid view-models.
func decorateSchedules(raw []models.ClassSchedule) []models.ClassSchedule {
	decorated := make([]models.ClassSchedule, len(raw))
	for i, s := range raw {
		decorated[i] = decorateSchedule(s)
	}
	return decorated
}

// decorateSchedule truncates store times to "HH:MM", synthesizes a
// single-entry teacher list when the record carries only the denormalized
// fields, fills missing colors, and re-derives the primary teacher from
// Teachers[0].
func decorateSchedule(s models.ClassSchedule) models.ClassSchedule {
	s.StartTime = NormalizeClock(s.StartTime)
	s.EndTime = NormalizeClock(s.EndTime)

	if len(s.Teachers) == 0 && s.TeacherID != "" {
		s.Teachers = []models.TeacherRef{{
			ID:    s.TeacherID,
			Name:  s.TeacherName,
			Color: s.TeacherColor,
		}}
	}
	for i := range s.Teachers {
		if s.Teachers[i].Color == "" {
			s.Teachers[i].Color = utils.ColorForID(s.Teachers[i].ID)
		}
	}
	denormalizePrimaryTeacher(&s)
	return s
}

// denormalizePrimaryTeacher keeps the legacy single-teacher fields in
// sync with Teachers[0].
func denormalizePrimaryTeacher(s *models.ClassSchedule) {
	if len(s.Teachers) == 0 {
		return
	}
	primary := s.Teachers[0]
	s.TeacherID = primary.ID
	s.TeacherName = primary.Name
	s.TeacherColor = primary.Color
}

// filterBySearch keeps schedules whose class name or any teacher name
// contains the query, case-insensitively. An empty query keeps all.
func filterBySearch(schedules []models.ClassSchedule, search string) []models.ClassSchedule {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return schedules
	}
	matched := make([]models.ClassSchedule, 0, len(schedules))
	for _, s := range schedules {
		if matchesSearch(s, query) {
			matched = append(matched, s)
		}
	}
	return matched
}

func matchesSearch(s models.ClassSchedule, query string) bool {
	if strings.Contains(strings.ToLower(s.ClassName), query) {
		return true
	}
	for _, t := range s.Teachers {
		if strings.Contains(strings.ToLower(t.Name), query) {
			return true
		}
	}
	return false
}

func listingKey(filter models.ScheduleFilter) string {
	day := ""
	if filter.DayOfWeek != nil {
		day = fmt.Sprintf("%d", *filter.DayOfWeek)
	}
	return fmt.Sprintf("t=%s;c=%s;d=%s;q=%s",
		filter.TeacherID, filter.ClassID, day, strings.ToLower(filter.Search))
}
