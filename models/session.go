package models

import "time"

// Reschedule session states. A session starts dragging, moves to hovering
// once a candidate slot has been validated, and is deleted on drop or
// cancel.
const (
	SessionStateDragging = "dragging"
	SessionStateHovering = "hovering"
)

// SlotTarget is the candidate day/time a dragged schedule hovers over.
type SlotTarget struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ConflictInfo describes the schedule blocking a candidate placement.
type ConflictInfo struct {
	ScheduleID string `json:"scheduleId"`
	ClassName  string `json:"className"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// RescheduleSession holds the state of an in-progress drag between hover
// validations and the final drop. The full schedule payload travels with
// the session so the drop is self-sufficient even if the listing has been
// refetched in the meantime.
type RescheduleSession struct {
	SessionID string        `json:"sessionId"`
	Schedule  ClassSchedule `json:"schedule"`
	State     string        `json:"state"`
	Target    *SlotTarget   `json:"target,omitempty"`
	CanDrop   bool          `json:"canDrop"`
	Conflict  *ConflictInfo `json:"conflict,omitempty"`
	StartedAt time.Time     `json:"startedAt"`
}

// HoverResult is the advisory verdict for one hovered slot.
type HoverResult struct {
	CanDrop  bool          `json:"canDrop"`
	Target   SlotTarget    `json:"target"`
	Conflict *ConflictInfo `json:"conflict,omitempty"`
	Reason   string        `json:"reason,omitempty"`
}

// ReminderPayload is the queued payload for an upcoming-class reminder.
type ReminderPayload struct {
	ScheduleID string `json:"scheduleId"`
	ClassName  string `json:"className"`
	TeacherID  string `json:"teacherId"`
	StartTime  string `json:"startTime"`
	FireDate   string `json:"fireDate"`
}
