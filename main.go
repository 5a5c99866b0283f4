package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	appointmentRepo "barberbook/database/repository/appointment"
	availabilityRepo "barberbook/database/repository/availability"
	barberRepo "barberbook/database/repository/barber"
	clientRepo "barberbook/database/repository/client"
	treatmentRepo "barberbook/database/repository/treatment"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/notification"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	barbers := barberRepo.NewMongoBarberRepo()
	clients := clientRepo.NewMongoClientRepo()
	treatments := treatmentRepo.NewMongoTreatmentRepo()
	availability := availabilityRepo.NewMongoAvailabilityRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()

	if err := availability.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}
	if err := appointments.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	notificationService := &notification.DefaultNotificationService{
		Clients: clients,
		Barbers: barbers,
	}
	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	dispatcher := &notification.Dispatcher{
		Notifier:     notificationService,
		Reminders:    reminderClient,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMins) * time.Minute,
	}

	calendar := &scheduling.Calendar{Repo: availability}
	guard := &scheduling.Guard{Appointments: appointments, Calendar: calendar}
	slotCache := scheduling.NewRedisSlotCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.SlotCacheTTLSecs)*time.Second,
	)

	schedulingService := &scheduling.DefaultSchedulingService{
		Barbers:      barbers,
		Treatments:   treatments,
		Appointments: appointments,
		Calendar:     calendar,
		Guard:        guard,
		Cache:        slotCache,
		Events:       dispatcher,
		StepMinutes:  config.AppConfig.SlotStepMinutes,
	}

	cron.InitReminderWorker(notificationService)

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, logger)
	routes.RegisterRoutes(router, schedulingHandler)

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
