// File: services/scheduler/interface.go
package scheduler

import (
	"context"
	"time"

	"classgrid/config"
	directoryRepo "classgrid/database/repository/directory"
	scheduleRepo "classgrid/database/repository/schedule"
	"classgrid/models"
)

// ScheduleService is the interface for schedule listings, board views and
// mutations. Every mutation re-validates conflicts before touching the
// store and invalidates the listing cache on confirmed success.
type ScheduleService interface {
	ListSchedules(ctx context.Context, filter models.ScheduleFilter) ([]models.ClassSchedule, error)
	GetSchedule(ctx context.Context, id string) (*models.ClassSchedule, error)
	CreateSchedule(ctx context.Context, req models.CreateScheduleRequest) (*models.ClassSchedule, error)
	UpdateSchedule(ctx context.Context, id string, req models.UpdateScheduleRequest) (*models.ClassSchedule, error)
	DeleteSchedule(ctx context.Context, id string) error

	DayBoard(ctx context.Context, date time.Time, filter models.ScheduleFilter) (*models.Board, error)
	WeekBoard(ctx context.Context, date time.Time, filter models.ScheduleFilter) (*models.Board, error)
	MonthBoard(ctx context.Context, date time.Time, filter models.ScheduleFilter) (*models.MonthBoard, error)
	SlotDefaults(dayOfWeek int, startTime string) models.SlotDefaults
}

// RescheduleService drives the drag-and-drop state machine: a session
// starts with the dragged schedule's full payload, hover validates
// candidate slots advisorily, drop is the authoritative gate, and cancel
// always resets.
type RescheduleService interface {
	Start(ctx context.Context, scheduleID string) (*models.RescheduleSession, error)
	Hover(ctx context.Context, sessionID string, dayOfWeek int, startTime string) (*models.HoverResult, error)
	Drop(ctx context.Context, sessionID string) (*models.ClassSchedule, error)
	Cancel(ctx context.Context, sessionID string) error
}

// ListingCache caches decorated schedule listings. Implementations treat
// every error as a miss; the store stays the single source of truth.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]models.ClassSchedule, bool)
	Set(ctx context.Context, key string, schedules []models.ClassSchedule)
	Invalidate(ctx context.Context)
}

// SessionStore persists in-progress reschedule sessions.
type SessionStore interface {
	Save(ctx context.Context, session *models.RescheduleSession) error
	Get(ctx context.Context, sessionID string) (*models.RescheduleSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// ReminderQueue schedules upcoming-class reminder delivery.
type ReminderQueue interface {
	EnqueueClassReminder(schedule models.ClassSchedule) error
}

// DefaultScheduleService implements ScheduleService. Cache and Reminders
// are optional; a nil field disables that concern.
type DefaultScheduleService struct {
	Repo      scheduleRepo.ScheduleRepository
	Directory directoryRepo.DirectoryRepository
	Cache     ListingCache
	Reminders ReminderQueue
	Config    config.SchedulerConfig
}

// DefaultRescheduleService implements RescheduleService.
type DefaultRescheduleService struct {
	Repo     scheduleRepo.ScheduleRepository
	Sessions SessionStore
	Cache    ListingCache
	Config   config.SchedulerConfig
}
