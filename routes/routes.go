// File: routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pulmocare/handlers"
)

// RegisterDoctorRoutes registers doctor CRUD and availability endpoints.
func RegisterDoctorRoutes(r *gin.Engine, dh *handlers.DoctorHandler, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/doctors")
	{
		api.GET("", dh.GetAllDoctorsHandler)
		api.POST("", dh.CreateDoctorHandler)
		api.GET("/count", dh.CountDoctorsHandler)
		api.GET("/:id", dh.GetDoctorByIDHandler)
		api.PUT("/:id", dh.UpdateDoctorHandler)
		api.DELETE("/:id", dh.DeleteDoctorHandler)

		api.GET("/:id/availability", ah.GetAvailabilityHandler)
		api.PUT("/:id/availability", ah.SetAvailabilityHandler)
		api.POST("/:id/availability/timeslot", ah.AddTimeSlotHandler)
		api.DELETE("/:id/availability/timeslot", ah.RemoveTimeSlotHandler)
		api.POST("/:id/availability/timeslots", ah.AppendTimeSlotsHandler)
		api.POST("/:id/availability/standard-schedule", ah.StandardScheduleHandler)
		api.GET("/:id/availability/slots", ah.GetAvailableSlotsHandler)
		api.GET("/:id/availability/check", ah.CheckTimeSlotHandler)
	}
}

// RegisterPatientRoutes registers patient CRUD endpoints.
func RegisterPatientRoutes(r *gin.Engine, ph *handlers.PatientHandler) {
	api := r.Group("/api/patients")
	{
		api.GET("", ph.GetAllPatientsHandler)
		api.POST("", ph.CreatePatientHandler)
		api.GET("/count", ph.CountPatientsHandler)
		api.GET("/:id", ph.GetPatientByIDHandler)
		api.PUT("/:id", ph.UpdatePatientHandler)
		api.DELETE("/:id", ph.DeletePatientHandler)
	}
}

// RegisterAppointmentRoutes registers booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, ah *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.GET("", ah.GetAllAppointmentsHandler)
		api.POST("", ah.CreateAppointmentHandler)
		api.POST("/sweep", ah.SweepStatusesHandler)
		api.GET("/date/:date", ah.GetAppointmentsByDateHandler)
		api.GET("/doctor/:id", ah.GetDoctorAppointmentsHandler)
		api.GET("/doctor/:id/date/:date", ah.GetDoctorAppointmentsByDateHandler)
		api.GET("/doctor/:id/today", ah.GetDoctorTodayAppointmentsHandler)
		api.GET("/doctor/:id/current", ah.GetDoctorCurrentAppointmentHandler)
		api.GET("/patient/:id", ah.GetPatientAppointmentsHandler)
		api.GET("/:id", ah.GetAppointmentHandler)
		api.PUT("/:id", ah.UpdateAppointmentHandler)
		api.PUT("/:id/past", ah.MarkPastHandler)
		api.DELETE("/:id", ah.CancelAppointmentHandler)
	}
}

// RegisterRoutes configures CORS and wires up all route groups.
func RegisterRoutes(
	r *gin.Engine,
	dh *handlers.DoctorHandler,
	ph *handlers.PatientHandler,
	avh *handlers.AvailabilityHandler,
	aph *handlers.AppointmentHandler,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, dh, avh)
	RegisterPatientRoutes(r, ph)
	RegisterAppointmentRoutes(r, aph)
}
