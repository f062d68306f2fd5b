// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pulmocare/models"
	appointmentSvc "pulmocare/services/appointment"
	"pulmocare/utils"
)

type AppointmentHandler struct {
	Service appointmentSvc.Service
}

func NewAppointmentHandler(svc appointmentSvc.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), appt)
	if err != nil {
		logger.Warn("Booking rejected",
			zap.String("doctorID", appt.DoctorID), zap.String("date", appt.Date),
			zap.String("startTime", appt.StartTime), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) GetAllAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// statusFilter maps the optional ?status= query to a storage status value.
func statusFilter(c *gin.Context) string {
	switch c.Query("status") {
	case "upcoming":
		return models.AppointmentUpcoming
	case "past":
		return models.AppointmentPast
	default:
		return ""
	}
}

func (h *AppointmentHandler) GetAppointmentsByDateHandler(c *gin.Context) {
	appts, err := h.Service.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) GetDoctorAppointmentsByDateHandler(c *gin.Context) {
	appts, err := h.Service.ListByDoctorAndDate(c.Request.Context(), c.Param("id"), c.Param("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) GetDoctorTodayAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.ListTodayByDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) GetDoctorCurrentAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.CurrentByDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) GetDoctorAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.ListByDoctor(c.Request.Context(), c.Param("id"), statusFilter(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) GetPatientAppointmentsHandler(c *gin.Context) {
	appts, err := h.Service.ListByPatient(c.Request.Context(), c.Param("id"), statusFilter(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	var patch models.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	appt, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}

func (h *AppointmentHandler) MarkPastHandler(c *gin.Context) {
	appt, err := h.Service.MarkPast(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) SweepStatusesHandler(c *gin.Context) {
	swept, err := h.Service.SweepStatuses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"swept": swept})
}
