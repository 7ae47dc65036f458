// File: services/notification/interface.go
package notification

import (
	"context"

	"classgrid/models"
	"classgrid/utils"

	"go.uber.org/zap"
)

// NotificationService delivers upcoming-class reminders. Push and email
// transports live outside the scheduling core; the default sink logs.
type NotificationService interface {
	SendClassReminder(ctx context.Context, payload models.ReminderPayload) error
}

// ConsoleNotificationService logs reminders through the shared logger.
type ConsoleNotificationService struct{}

func (s *ConsoleNotificationService) SendClassReminder(_ context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("class reminder",
		zap.String("scheduleID", payload.ScheduleID),
		zap.String("className", payload.ClassName),
		zap.String("teacherID", payload.TeacherID),
		zap.String("startTime", payload.StartTime),
		zap.String("fireDate", payload.FireDate),
	)
	return nil
}
