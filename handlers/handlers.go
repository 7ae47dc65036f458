package handlers

import (
	"errors"
	"net/http"

	"classgrid/services/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Schedule endpoints.
	ListSchedulesHandler  gin.HandlerFunc
	GetScheduleHandler    gin.HandlerFunc
	CreateScheduleHandler gin.HandlerFunc
	UpdateScheduleHandler gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc

	// Board endpoints.
	DayBoardHandler     gin.HandlerFunc
	WeekBoardHandler    gin.HandlerFunc
	MonthBoardHandler   gin.HandlerFunc
	SlotDefaultsHandler gin.HandlerFunc

	// Reschedule session endpoints.
	StartRescheduleHandler  gin.HandlerFunc
	HoverRescheduleHandler  gin.HandlerFunc
	DropRescheduleHandler   gin.HandlerFunc
	CancelRescheduleHandler gin.HandlerFunc

	// Directory endpoints.
	ListTeachersHandler gin.HandlerFunc
	ListClassesHandler  gin.HandlerFunc
}

// respondServiceError maps service errors onto HTTP responses: conflicts
// become 409 with the blocking schedule attached, validation failures
// 400, missing records 404, everything else 500.
func respondServiceError(c *gin.Context, err error) {
	if ce, ok := scheduler.AsConflictError(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"error":    ce.Message,
			"conflict": ce.Conflict,
		})
		return
	}
	if ve, ok := scheduler.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, redis.Nil) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
