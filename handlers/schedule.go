package handlers

import (
	"net/http"
	"strconv"

	"classgrid/models"
	"classgrid/services/scheduler"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the schedule CRUD endpoints.
type ScheduleHandler struct {
	Service scheduler.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc scheduler.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// parseScheduleFilter reads the listing filters off the query string.
func parseScheduleFilter(c *gin.Context) models.ScheduleFilter {
	filter := models.ScheduleFilter{
		TeacherID: c.Query("teacherId"),
		ClassID:   c.Query("classId"),
		Search:    c.Query("search"),
	}
	if raw := c.Query("dayOfWeek"); raw != "" {
		if day, err := strconv.Atoi(raw); err == nil {
			filter.DayOfWeek = &day
		}
	}
	return filter
}

// ListSchedulesHandler handles GET /api/schedules.
func (h *ScheduleHandler) ListSchedulesHandler(c *gin.Context) {
	schedules, err := h.Service.ListSchedules(c.Request.Context(), parseScheduleFilter(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// GetScheduleHandler handles GET /api/schedules/:id.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	schedule, err := h.Service.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// CreateScheduleHandler handles POST /api/schedules.
func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	schedule, err := h.Service.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// UpdateScheduleHandler handles PATCH /api/schedules/:id.
func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	var req models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	schedule, err := h.Service.UpdateSchedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// DeleteScheduleHandler handles DELETE /api/schedules/:id.
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	if err := h.Service.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
