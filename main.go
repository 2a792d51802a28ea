// File: agendly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendly/config"
	"agendly/cron"
	"agendly/database"
	appointmentRepo "agendly/database/repository/appointment"
	professionalRepo "agendly/database/repository/professional"
	servicecatRepo "agendly/database/repository/servicecat"
	settingsRepo "agendly/database/repository/settings"
	"agendly/handlers"
	"agendly/middleware"
	"agendly/routes"
	"agendly/services/appointment"
	"agendly/services/booking"
	"agendly/services/notification"
	"agendly/services/scheduling"
	"agendly/services/tasks"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	routes.RegisterCORS(router)

	// repositories.
	aptRepo := appointmentRepo.NewMongoAppointmentRepo()
	profRepo := professionalRepo.NewMongoProfessionalRepo()
	svcRepo := servicecatRepo.NewMongoServiceRepo()
	setRepo := settingsRepo.NewMongoSettingsRepo()

	if mongoRepo, ok := aptRepo.(*appointmentRepo.MongoAppointmentRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
		}
	}

	// services.
	notifier := notification.NewEmailNotifier()
	guard := scheduling.NewConflictGuard(aptRepo)
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:         aptRepo,
		SettingsRepo: setRepo,
		ServiceRepo:  svcRepo,
		Guard:        guard,
		Notifier:     notifier,
		Reminders:    tasks.NewReminderScheduler(),
	}
	cron.InitReminderWorker(aptRepo, svcRepo, notifier)
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), utils.SessionTTL())
	bookingService := &booking.DefaultBookingSessionService{
		Store:          sessionStore,
		AppointmentSvc: appointmentService,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService, appointmentService),
		Appointment:  handlers.NewAppointmentHandler(appointmentService),
		Professional: handlers.NewProfessionalHandler(profRepo),
		Services:     handlers.NewServiceCatalogueHandler(svcRepo),
		Settings:     handlers.NewSettingsHandler(setRepo),
	}

	routes.RegisterBookingRoutes(router, handlerBundle)
	routes.RegisterCatalogueRoutes(router, handlerBundle)
	routes.RegisterAdminRoutes(router, handlerBundle)
	routes.RegisterHealthRoute(router)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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
