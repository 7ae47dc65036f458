package handlers

import (
	"net/http"

	"classgrid/services/scheduler"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RescheduleHandler serves the drag-and-drop reschedule session
// endpoints.
type RescheduleHandler struct {
	Service scheduler.RescheduleService
	Logger  *zap.Logger
}

// NewRescheduleHandler constructs a RescheduleHandler.
func NewRescheduleHandler(svc scheduler.RescheduleService, logger *zap.Logger) *RescheduleHandler {
	return &RescheduleHandler{Service: svc, Logger: logger}
}

// StartRescheduleHandler handles POST /api/reschedule/session.
func (h *RescheduleHandler) StartRescheduleHandler(c *gin.Context) {
	var input struct {
		ScheduleID string `json:"scheduleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.Start(c.Request.Context(), input.ScheduleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// HoverRescheduleHandler handles PUT /api/reschedule/session/:sessionID/hover.
func (h *RescheduleHandler) HoverRescheduleHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		DayOfWeek *int   `json:"dayOfWeek" binding:"required"`
		StartTime string `json:"startTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Hover(c.Request.Context(), sessionID, *input.DayOfWeek, input.StartTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DropRescheduleHandler handles POST /api/reschedule/session/:sessionID/drop.
func (h *RescheduleHandler) DropRescheduleHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	schedule, err := h.Service.Drop(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.Logger.Info("schedule moved",
		zap.String("scheduleID", schedule.ID),
		zap.Int("dayOfWeek", schedule.DayOfWeek),
		zap.String("startTime", schedule.StartTime))
	c.JSON(http.StatusOK, schedule)
}

// CancelRescheduleHandler handles DELETE /api/reschedule/session/:sessionID.
func (h *RescheduleHandler) CancelRescheduleHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
