// File: handlers/patient.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pulmocare/models"
	patientSvc "pulmocare/services/patient"
	"pulmocare/utils"
)

type PatientHandler struct {
	Service patientSvc.Service
}

func NewPatientHandler(svc patientSvc.Service) *PatientHandler {
	return &PatientHandler{Service: svc}
}

func (h *PatientHandler) CreatePatientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), patient)
	if err != nil {
		logger.Error("Failed to create patient", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PatientHandler) GetPatientByIDHandler(c *gin.Context) {
	patient, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) GetAllPatientsHandler(c *gin.Context) {
	patients, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

func (h *PatientHandler) UpdatePatientHandler(c *gin.Context) {
	var patch models.PatientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	patient, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) CountPatientsHandler(c *gin.Context) {
	n, err := h.Service.Count(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *PatientHandler) DeletePatientHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}
