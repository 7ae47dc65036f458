package handlers

import (
	"net/http"
	"strconv"
	"time"

	"classgrid/services/scheduler"

	"github.com/gin-gonic/gin"
)

// BoardHandler serves the positioned day/week/month board views.
type BoardHandler struct {
	Service scheduler.ScheduleService
}

// NewBoardHandler constructs a BoardHandler.
func NewBoardHandler(svc scheduler.ScheduleService) *BoardHandler {
	return &BoardHandler{Service: svc}
}

// parseBoardDate reads the date query parameter, defaulting to today.
func parseBoardDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// DayBoardHandler handles GET /api/board/day.
func (h *BoardHandler) DayBoardHandler(c *gin.Context) {
	date, ok := parseBoardDate(c)
	if !ok {
		return
	}
	board, err := h.Service.DayBoard(c.Request.Context(), date, parseScheduleFilter(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// WeekBoardHandler handles GET /api/board/week.
func (h *BoardHandler) WeekBoardHandler(c *gin.Context) {
	date, ok := parseBoardDate(c)
	if !ok {
		return
	}
	board, err := h.Service.WeekBoard(c.Request.Context(), date, parseScheduleFilter(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// MonthBoardHandler handles GET /api/board/month.
func (h *BoardHandler) MonthBoardHandler(c *gin.Context) {
	date, ok := parseBoardDate(c)
	if !ok {
		return
	}
	board, err := h.Service.MonthBoard(c.Request.Context(), date, parseScheduleFilter(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// SlotDefaultsHandler handles GET /api/board/slot-defaults, seeding the
// create form when a schedule is added from an empty grid slot.
func (h *BoardHandler) SlotDefaultsHandler(c *gin.Context) {
	day, err := strconv.Atoi(c.Query("dayOfWeek"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dayOfWeek must be 0-6"})
		return
	}
	start := c.Query("time")
	if !scheduler.ValidClock(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must be a 24-hour HH:MM string"})
		return
	}
	c.JSON(http.StatusOK, h.Service.SlotDefaults(day, start))
}
