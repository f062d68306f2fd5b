// File: handlers/availability.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pulmocare/models"
	appointmentSvc "pulmocare/services/appointment"
	availabilitySvc "pulmocare/services/availability"
	"pulmocare/utils"
)

type AvailabilityHandler struct {
	Service      availabilitySvc.Service
	Appointments appointmentSvc.Service
}

func NewAvailabilityHandler(svc availabilitySvc.Service, appts appointmentSvc.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Appointments: appts}
}

func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	tpl, err := h.Service.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *AvailabilityHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var patch models.AvailabilityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	doctor, err := h.Service.SetAvailability(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		logger.Error("Failed to update availability", zap.String("doctorID", c.Param("id")), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *AvailabilityHandler) AddTimeSlotHandler(c *gin.Context) {
	var body struct {
		Day       string `json:"day" binding:"required"`
		StartTime string `json:"startTime" binding:"required"`
		EndTime   string `json:"endTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	doctor, err := h.Service.AddSlot(c.Request.Context(), c.Param("id"), body.Day, body.StartTime, body.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *AvailabilityHandler) RemoveTimeSlotHandler(c *gin.Context) {
	var body struct {
		Day       string `json:"day" binding:"required"`
		StartTime string `json:"startTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	doctor, err := h.Service.RemoveSlot(c.Request.Context(), c.Param("id"), body.Day, body.StartTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *AvailabilityHandler) AppendTimeSlotsHandler(c *gin.Context) {
	var body struct {
		Slots map[string][]models.TimeInterval `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	doctor, err := h.Service.AppendSlots(c.Request.Context(), c.Param("id"), body.Slots)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *AvailabilityHandler) StandardScheduleHandler(c *gin.Context) {
	var body struct {
		WorkDays  []string `json:"workDays" binding:"required"`
		WorkHours struct {
			Start string `json:"start" binding:"required"`
			End   string `json:"end" binding:"required"`
		} `json:"workHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	doctor, err := h.Service.ApplyStandardSchedule(c.Request.Context(), c.Param("id"), body.WorkDays, body.WorkHours.Start, body.WorkHours.End)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "")
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if slots == nil {
		slots = []models.TimeInterval{}
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

func (h *AvailabilityHandler) CheckTimeSlotHandler(c *gin.Context) {
	date := c.Query("date")
	start := c.Query("startTime")
	if date == "" || start == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date or startTime query parameter", "")
		return
	}

	available, err := h.Appointments.CheckSlot(c.Request.Context(), c.Param("id"), date, start, c.Query("endTime"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": available,
		"doctorId":  c.Param("id"),
		"date":      date,
		"startTime": start,
		"endTime":   c.Query("endTime"),
	})
}
