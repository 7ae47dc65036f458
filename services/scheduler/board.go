// File: services/scheduler/board.go
package scheduler

import (
	"context"
	"time"

	"classgrid/models"
)

// Month cells show at most this many entries; the rest collapse into the
// overflow counter.
const maxMonthCellEntries = 3

const boardDateLayout = "2006-01-02"

// DayBoard returns the positioned single-day view for the given date.
func (s *DefaultScheduleService) DayBoard(ctx context.Context, date time.Time, filter models.ScheduleFilter) (*models.Board, error) {
	day := int(date.Weekday())
	filter.DayOfWeek = &day
	schedules, err := s.ListSchedules(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.Board{
		View:      "day",
		TimeSlots: TimeSlots(s.Config),
		Days: []models.DayColumn{{
			Date:      date.Format(boardDateLayout),
			DayOfWeek: day,
			Schedules: LayoutDay(schedules, s.Config),
		}},
	}, nil
}

// WeekBoard returns the positioned seven-day view for the week containing
// the given date, starting on the configured weekday.
func (s *DefaultScheduleService) WeekBoard(ctx context.Context, date time.Time, filter models.ScheduleFilter) (*models.Board, error) {
	filter.DayOfWeek = nil
	schedules, err := s.ListSchedules(ctx, filter)
	if err != nil {
		return nil, err
	}
	byDay := bucketByDay(schedules)

	days := make([]models.DayColumn, 0, 7)
	for _, d := range WeekDates(date, s.Config.WeekStartsOn) {
		dow := int(d.Weekday())
		days = append(days, models.DayColumn{
			Date:      d.Format(boardDateLayout),
			DayOfWeek: dow,
			Schedules: LayoutDay(byDay[dow], s.Config),
		})
	}

	return &models.Board{
		View:      "week",
		TimeSlots: TimeSlots(s.Config),
		Days:      days,
	}, nil
}

// MonthBoard returns the 6-week calendar grid for the month containing
// the given date. Schedules recur weekly, so each one appears in every
// cell matching its day of week; the slot grid is bypassed entirely.
func (s *DefaultScheduleService) MonthBoard(ctx context.Context, date time.Time, filter models.ScheduleFilter) (*models.MonthBoard, error) {
	filter.DayOfWeek = nil
	schedules, err := s.ListSchedules(ctx, filter)
	if err != nil {
		return nil, err
	}
	byDay := bucketByDay(schedules)

	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	gridStart := WeekDates(first, s.Config.WeekStartsOn)[0]

	weeks := make([][]models.MonthCell, 0, 6)
	cursor := gridStart
	for w := 0; w < 6; w++ {
		week := make([]models.MonthCell, 0, 7)
		for d := 0; d < 7; d++ {
			dow := int(cursor.Weekday())
			entries := byDay[dow]
			overflow := 0
			if len(entries) > maxMonthCellEntries {
				overflow = len(entries) - maxMonthCellEntries
				entries = entries[:maxMonthCellEntries]
			}
			week = append(week, models.MonthCell{
				Date:      cursor.Format(boardDateLayout),
				DayOfWeek: dow,
				InMonth:   cursor.Month() == date.Month(),
				Entries:   entries,
				Overflow:  overflow,
			})
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}

	return &models.MonthBoard{
		Year:  date.Year(),
		Month: int(date.Month()),
		Weeks: weeks,
	}, nil
}

// SlotDefaults seeds the create form for an empty grid slot: the new slot
// starts at the clicked boundary and spans one slot duration, clamped to
// the end of the grid.
func (s *DefaultScheduleService) SlotDefaults(dayOfWeek int, startTime string) models.SlotDefaults {
	startMin := TimeToMinutes(startTime)
	endMin := startMin + s.Config.SlotDuration
	if endMin > s.Config.EndHour*60 {
		endMin = s.Config.EndHour * 60
	}
	return models.SlotDefaults{
		DayOfWeek: dayOfWeek,
		StartTime: MinutesToTime(startMin),
		EndTime:   MinutesToTime(endMin),
	}
}

func bucketByDay(schedules []models.ClassSchedule) map[int][]models.ClassSchedule {
	byDay := make(map[int][]models.ClassSchedule, 7)
	for _, s := range schedules {
		byDay[s.DayOfWeek] = append(byDay[s.DayOfWeek], s)
	}
	return byDay
}
