package routes

import (
	"net/http"
	"time"

	"classgrid/handlers"
	"classgrid/middleware"
	"classgrid/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers schedule listing and mutation endpoints.
// Reads are open; mutations require authentication.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.GET("", hb.ListSchedulesHandler)
		api.GET("/:id", hb.GetScheduleHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.CreateScheduleHandler)
		protected.PATCH("/:id", hb.UpdateScheduleHandler)
		protected.DELETE("/:id", hb.DeleteScheduleHandler)
	}
}

// RegisterBoardRoutes registers the positioned board views.
func RegisterBoardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/board")
	{
		api.GET("/day", hb.DayBoardHandler)
		api.GET("/week", hb.WeekBoardHandler)
		api.GET("/month", hb.MonthBoardHandler)
		api.GET("/slot-defaults", hb.SlotDefaultsHandler)
	}
}

// RegisterRescheduleRoutes sets up the drag-and-drop session endpoints.
func RegisterRescheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessionGroup := r.Group("/api/reschedule")
	{
		sessionGroup.Use(middleware.JWTAuthMiddleware())
		sessionGroup.POST("/session", hb.StartRescheduleHandler)
		sessionGroup.PUT("/session/:sessionID/hover", hb.HoverRescheduleHandler)
		sessionGroup.POST("/session/:sessionID/drop", hb.DropRescheduleHandler)
		sessionGroup.DELETE("/session/:sessionID", hb.CancelRescheduleHandler)
	}
}

// RegisterDirectoryRoutes registers the read-only directory endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/directory")
	{
		api.GET("/teachers", hb.ListTeachersHandler)
		api.GET("/classes", hb.ListClassesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterBoardRoutes(r, hb)
	RegisterRescheduleRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterHealthRoute(r)
}
