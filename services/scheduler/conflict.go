// File: services/scheduler/conflict.go
package scheduler

import "classgrid/models"

// CheckConflict returns the first schedule on the candidate's day whose
// [start, end) interval overlaps the candidate's, skipping excludeID
// (the candidate's own record during a move). Intervals are half-open:
// a slot ending at 10:00 does not conflict with one starting at 10:00.
//
// Which overlapping record comes back follows the input order and is not
// part of the contract; callers should only rely on nil vs non-nil.
func CheckConflict(candidate models.ClassSchedule, existing []models.ClassSchedule, excludeID string) *models.ClassSchedule {
	newStart := TimeToMinutes(candidate.StartTime)
	newEnd := TimeToMinutes(candidate.EndTime)

	for i := range existing {
		ex := &existing[i]
		if ex.ID == excludeID || ex.DayOfWeek != candidate.DayOfWeek {
			continue
		}
		if newStart < TimeToMinutes(ex.EndTime) && newEnd > TimeToMinutes(ex.StartTime) {
			return ex
		}
	}
	return nil
}

// HasConflict is the boolean form of CheckConflict.
func HasConflict(candidate models.ClassSchedule, existing []models.ClassSchedule, excludeID string) bool {
	return CheckConflict(candidate, existing, excludeID) != nil
}
