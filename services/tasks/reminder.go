// File: services/tasks/reminder.go
package tasks

import (
	"encoding/json"
	"time"

	"classgrid/config"
	"classgrid/models"
	"classgrid/services/scheduler"

	"github.com/hibiken/asynq"
)

const TypeClassReminder = "reminder:class"

// NewClassReminderTask builds the queued task for one reminder, scheduled
// to fire at the given instant.
func NewClassReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeClassReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderQueue implements scheduler.ReminderQueue over an asynq
// client: each enqueue targets the schedule's next weekly occurrence,
// minus the configured lead time.
type AsynqReminderQueue struct {
	Client *asynq.Client
	Lead   time.Duration
}

// NewAsynqReminderQueue builds the queue from AppConfig.
func NewAsynqReminderQueue() *AsynqReminderQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &AsynqReminderQueue{
		Client: client,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

func (q *AsynqReminderQueue) EnqueueClassReminder(schedule models.ClassSchedule) error {
	next := scheduler.NextOccurrence(schedule.DayOfWeek, schedule.StartTime, time.Now())

	payload := models.ReminderPayload{
		ScheduleID: schedule.ID,
		ClassName:  schedule.ClassName,
		TeacherID:  schedule.TeacherID,
		StartTime:  schedule.StartTime,
		FireDate:   next.Format(time.RFC3339),
	}
	task, opts, err := NewClassReminderTask(payload, next.Add(-q.Lead))
	if err != nil {
		return err
	}
	_, err = q.Client.Enqueue(task, opts...)
	return err
}
