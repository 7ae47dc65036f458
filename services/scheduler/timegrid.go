// File: services/scheduler/timegrid.go
package scheduler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"classgrid/config"
)

// Minutes from midnight is the canonical arithmetic representation for
// grid times. All times are local wall-clock and day-agnostic; there is
// no timezone handling anywhere in this package.

// TimeToMinutes converts a "HH:MM" clock string to minutes from midnight.
// Input is assumed well-formed; malformed parts parse as zero. Validation
// happens at the request boundary, not here.
func TimeToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 3)
	h, _ := strconv.Atoi(parts[0])
	m := 0
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}

// MinutesToTime converts minutes from midnight back to a "HH:MM" string.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock truncates "HH:MM:SS" values coming from the store down
// to the "HH:MM" form the grid works with.
func NormalizeClock(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}

// ValidClock reports whether clock is a well-formed 24-hour "HH:MM"
// string.
func ValidClock(clock string) bool {
	if len(clock) != 5 || clock[2] != ':' {
		return false
	}
	h, err := strconv.Atoi(clock[:2])
	if err != nil {
		return false
	}
	m, err := strconv.Atoi(clock[3:])
	if err != nil {
		return false
	}
	return h >= 0 && h < 24 && m >= 0 && m < 60
}

// Duration returns end minus start in minutes. Callers must ensure
// end > start; overnight-spanning slots are not supported.
func Duration(start, end string) int {
	return TimeToMinutes(end) - TimeToMinutes(start)
}

// FormatDuration renders a minute count as "1h 30m" style display text.
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// TopOffset returns the pixel offset of a start time on the day column.
func TopOffset(start string, cfg config.SchedulerConfig) float64 {
	minutes := TimeToMinutes(start) - cfg.StartHour*60
	return float64(minutes) / float64(cfg.SlotDuration) * float64(cfg.SlotHeight)
}

// CardHeight returns the rendered pixel height of a start/end pair.
func CardHeight(start, end string, cfg config.SchedulerConfig) float64 {
	return float64(Duration(start, end)) / float64(cfg.SlotDuration) * float64(cfg.SlotHeight)
}

// TimeSlots lists the slot boundaries from StartHour to EndHour
// inclusive, stepping by SlotDuration.
func TimeSlots(cfg config.SchedulerConfig) []string {
	var slots []string
	for m := cfg.StartHour * 60; m <= cfg.EndHour*60; m += cfg.SlotDuration {
		slots = append(slots, MinutesToTime(m))
	}
	return slots
}

// WeekDates returns the 7 calendar dates of the week containing date,
// starting on the configured weekday (0=Sunday).
func WeekDates(date time.Time, weekStartsOn int) []time.Time {
	offset := (int(date.Weekday()) - weekStartsOn + 7) % 7
	start := date.AddDate(0, 0, -offset)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// SnapTime converts a vertical drag delta in pixels into a new
// slot-aligned time, clamped to the grid bounds.
func SnapTime(original string, deltaY float64, cfg config.SchedulerConfig) string {
	slots := int(math.Round(deltaY / float64(cfg.SlotHeight)))
	minutes := TimeToMinutes(original) + slots*cfg.SlotDuration
	if minutes < cfg.StartHour*60 {
		minutes = cfg.StartHour * 60
	}
	if minutes > cfg.EndHour*60 {
		minutes = cfg.EndHour * 60
	}
	return MinutesToTime(minutes)
}

// NextOccurrence returns the next instant a weekly slot (dayOfWeek +
// "HH:MM" start) occurs strictly after now.
func NextOccurrence(dayOfWeek int, start string, now time.Time) time.Time {
	days := (dayOfWeek - int(now.Weekday()) + 7) % 7
	minutes := TimeToMinutes(start)
	candidate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, days).
		Add(time.Duration(minutes) * time.Minute)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}
