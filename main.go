// File: classgrid/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classgrid/config"
	"classgrid/cron"
	"classgrid/database"
	directoryRepo "classgrid/database/repository/directory"
	scheduleRepo "classgrid/database/repository/schedule"
	"classgrid/handlers"
	"classgrid/middleware"
	"classgrid/routes"
	"classgrid/services/directory"
	"classgrid/services/notification"
	"classgrid/services/scheduler"
	"classgrid/services/tasks"
	"classgrid/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	schedulerConfig := config.Scheduler()

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	dirRepo := directoryRepo.NewMongoDirectoryRepo()

	// services.
	listingCache := scheduler.NewRedisListingCache()
	reminderQueue := tasks.NewAsynqReminderQueue()

	scheduleService := &scheduler.DefaultScheduleService{
		Repo:      schedRepo,
		Directory: dirRepo,
		Cache:     listingCache,
		Reminders: reminderQueue,
		Config:    schedulerConfig,
	}
	rescheduleService := &scheduler.DefaultRescheduleService{
		Repo:     schedRepo,
		Sessions: scheduler.NewRedisSessionStore(),
		Cache:    listingCache,
		Config:   schedulerConfig,
	}
	directoryService := &directory.DefaultDirectoryService{
		Repo: dirRepo,
	}
	notificationService := &notification.ConsoleNotificationService{}

	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	boardHandler := handlers.NewBoardHandler(scheduleService)
	rescheduleHandler := handlers.NewRescheduleHandler(rescheduleService, logger)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Schedule endpoints.
		ListSchedulesHandler:  scheduleHandler.ListSchedulesHandler,
		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		CreateScheduleHandler: scheduleHandler.CreateScheduleHandler,
		UpdateScheduleHandler: scheduleHandler.UpdateScheduleHandler,
		DeleteScheduleHandler: scheduleHandler.DeleteScheduleHandler,

		// Board endpoints.
		DayBoardHandler:     boardHandler.DayBoardHandler,
		WeekBoardHandler:    boardHandler.WeekBoardHandler,
		MonthBoardHandler:   boardHandler.MonthBoardHandler,
		SlotDefaultsHandler: boardHandler.SlotDefaultsHandler,

		// Reschedule session endpoints.
		StartRescheduleHandler:  rescheduleHandler.StartRescheduleHandler,
		HoverRescheduleHandler:  rescheduleHandler.HoverRescheduleHandler,
		DropRescheduleHandler:   rescheduleHandler.DropRescheduleHandler,
		CancelRescheduleHandler: rescheduleHandler.CancelRescheduleHandler,

		// Directory endpoints.
		ListTeachersHandler: directoryHandler.ListTeachersHandler,
		ListClassesHandler:  directoryHandler.ListClassesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
