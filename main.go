// File: pulmocare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulmocare/config"
	"pulmocare/database"
	appointmentRepo "pulmocare/database/repository/appointment"
	doctorRepo "pulmocare/database/repository/doctor"
	patientRepo "pulmocare/database/repository/patient"
	"pulmocare/handlers"
	"pulmocare/middleware"
	"pulmocare/routes"
	"pulmocare/services/appointment"
	"pulmocare/services/availability"
	"pulmocare/services/doctor"
	"pulmocare/services/patient"
	"pulmocare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSlotCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctors := doctorRepo.NewMongoDoctorRepo()
	patients := patientRepo.NewMongoPatientRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer idxCancel()
	for _, ensure := range []func(context.Context) error{
		doctors.EnsureIndexes,
		patients.EnsureIndexes,
		appointments.EnsureIndexes,
	} {
		if err := ensure(idxCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	doctorService := &doctor.DefaultDoctorService{Repo: doctors}
	patientService := &patient.DefaultPatientService{Repo: patients}
	availabilityService := &availability.DefaultAvailabilityService{
		Doctors:      doctors,
		Appointments: appointments,
		Cache:        utils.GetSlotCacheClient(),
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Doctors:      doctors,
		Patients:     patients,
		Appointments: appointments,
		Cache:        utils.GetSlotCacheClient(),
		Clock:        appointment.SystemClock{},
	}

	// handlers.
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, appointmentService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	routes.RegisterRoutes(router, doctorHandler, patientHandler, availabilityHandler, appointmentHandler)

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
