// File: services/scheduler/session.go
package scheduler

import (
	"context"
	"fmt"
	"time"

	"classgrid/models"
	"classgrid/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start opens a reschedule session for the given schedule. The full
// schedule payload is captured into the session so the eventual drop is
// self-sufficient even if the listing is refetched mid-drag.
func (s *DefaultRescheduleService) Start(ctx context.Context, scheduleID string) (*models.RescheduleSession, error) {
	schedule, err := s.Repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("schedule %s not found: %w", scheduleID, err)
	}

	session := &models.RescheduleSession{
		SessionID: uuid.New().String(),
		Schedule:  decorateSchedule(*schedule),
		State:     models.SessionStateDragging,
		StartedAt: time.Now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Hover validates one candidate slot for the dragged schedule and records
// the verdict on the session. The result is advisory; Drop re-validates
// from fresh store state.
func (s *DefaultRescheduleService) Hover(ctx context.Context, sessionID string, dayOfWeek int, startTime string) (*models.HoverResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.evaluate(ctx, &session.Schedule, dayOfWeek, startTime)
	if err != nil {
		return nil, err
	}

	session.State = models.SessionStateHovering
	session.Target = &result.Target
	session.CanDrop = result.CanDrop
	session.Conflict = result.Conflict
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

// Drop commits the move to the last hovered slot. The placement is
// re-validated against current store state first; on conflict the store
// is never touched and the session stays live so the client can hover
// elsewhere. The session is cleared only on success.
func (s *DefaultRescheduleService) Drop(ctx context.Context, sessionID string) (*models.ClassSchedule, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Target == nil {
		return nil, NewValidationError("no hovered slot to drop on")
	}

	result, err := s.evaluate(ctx, &session.Schedule, session.Target.DayOfWeek, session.Target.StartTime)
	if err != nil {
		return nil, err
	}
	if !result.CanDrop {
		if result.Conflict != nil {
			return nil, &ConflictError{
				Code:     "scheduleConflict",
				Message:  result.Reason,
				Conflict: result.Conflict,
			}
		}
		return nil, NewValidationError(result.Reason)
	}

	set := map[string]interface{}{
		"dayOfWeek": result.Target.DayOfWeek,
		"startTime": result.Target.StartTime,
		"endTime":   result.Target.EndTime,
	}
	if err := s.Repo.Update(ctx, session.Schedule.ID, set); err != nil {
		return nil, fmt.Errorf("failed to move schedule %s: %w", session.Schedule.ID, err)
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Debug("failed to clear reschedule session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	updated := session.Schedule
	updated.DayOfWeek = result.Target.DayOfWeek
	updated.StartTime = result.Target.StartTime
	updated.EndTime = result.Target.EndTime
	return &updated, nil
}

// Cancel discards the session unconditionally. Cancelling an unknown or
// expired session is not an error; the reset must always succeed.
func (s *DefaultRescheduleService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Debug("failed to delete reschedule session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return nil
}

// evaluate applies the placement rules for one candidate slot: the move
// preserves the schedule's duration, must not run past the end of the
// grid, and must not overlap any same-day schedule other than itself.
func (s *DefaultRescheduleService) evaluate(ctx context.Context, schedule *models.ClassSchedule, dayOfWeek int, startTime string) (*models.HoverResult, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, NewValidationError(fmt.Sprintf("dayOfWeek %d out of range", dayOfWeek))
	}
	if !ValidClock(startTime) {
		return nil, NewValidationError("startTime must be a 24-hour HH:MM string")
	}

	duration := Duration(schedule.StartTime, schedule.EndTime)
	startMin := TimeToMinutes(startTime)
	endMin := startMin + duration
	target := models.SlotTarget{
		DayOfWeek: dayOfWeek,
		StartTime: MinutesToTime(startMin),
		EndTime:   MinutesToTime(endMin),
	}

	if startMin < s.Config.StartHour*60 || endMin > s.Config.EndHour*60 {
		return &models.HoverResult{
			CanDrop: false,
			Target:  target,
			Reason: fmt.Sprintf("placement falls outside the %02d:00-%02d:00 grid",
				s.Config.StartHour, s.Config.EndHour),
		}, nil
	}

	existing, err := s.Repo.ListByDay(ctx, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts: %w", err)
	}

	candidate := *schedule
	candidate.DayOfWeek = target.DayOfWeek
	candidate.StartTime = target.StartTime
	candidate.EndTime = target.EndTime
	if conflict := CheckConflict(candidate, existing, schedule.ID); conflict != nil {
		return &models.HoverResult{
			CanDrop: false,
			Target:  target,
			Conflict: &models.ConflictInfo{
				ScheduleID: conflict.ID,
				ClassName:  conflict.ClassName,
				StartTime:  NormalizeClock(conflict.StartTime),
				EndTime:    NormalizeClock(conflict.EndTime),
			},
			Reason: fmt.Sprintf("overlaps %q", conflict.ClassName),
		}, nil
	}

	return &models.HoverResult{CanDrop: true, Target: target}, nil
}
