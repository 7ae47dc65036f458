// File: services/scheduler/errors.go
package scheduler

import (
	"errors"
	"fmt"

	"classgrid/models"
)

// ConflictError reports that a proposed placement overlaps an existing
// schedule. The mutation is never issued when this is returned.
type ConflictError struct {
	Code     string
	Message  string
	Conflict *models.ConflictInfo
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConflictError builds a ConflictError from the blocking schedule.
func NewConflictError(with *models.ClassSchedule) error {
	return &ConflictError{
		Code: "scheduleConflict",
		Message: fmt.Sprintf("overlaps %q (%s-%s)",
			with.ClassName, with.StartTime, with.EndTime),
		Conflict: &models.ConflictInfo{
			ScheduleID: with.ID,
			ClassName:  with.ClassName,
			StartTime:  with.StartTime,
			EndTime:    with.EndTime,
		},
	}
}

// ValidationError reports malformed or out-of-bounds request input.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "invalidSchedule",
		Message: msg,
	}
}

// AsConflictError unwraps err into a *ConflictError when possible.
func AsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
