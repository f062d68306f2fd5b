// File: handlers/doctor.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pulmocare/models"
	doctorSvc "pulmocare/services/doctor"
	"pulmocare/utils"
)

type DoctorHandler struct {
	Service doctorSvc.Service
}

func NewDoctorHandler(svc doctorSvc.Service) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), doctor)
	if err != nil {
		logger.Error("Failed to create doctor", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	doctor, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) GetAllDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	var patch models.DoctorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	doctor, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) CountDoctorsHandler(c *gin.Context) {
	n, err := h.Service.Count(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}
