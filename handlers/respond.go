// File: handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appointmentRepo "pulmocare/database/repository/appointment"
	doctorRepo "pulmocare/database/repository/doctor"
	patientRepo "pulmocare/database/repository/patient"
	"pulmocare/services/appointment"
	"pulmocare/services/availability"
)

// respondServiceError translates service errors into HTTP responses. Slot
// unavailability gets a distinguishable 409 payload so clients can prompt for
// another time instead of treating it as a system error.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, doctorRepo.ErrNotFound),
		errors.Is(err, patientRepo.ErrNotFound),
		errors.Is(err, appointmentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case appointment.IsSlotUnavailable(err):
		c.JSON(http.StatusConflict, gin.H{
			"error":           "Slot unavailable",
			"message":         err.Error(),
			"slotUnavailable": true,
		})

	case errors.Is(err, doctorRepo.ErrDuplicateEmail),
		errors.Is(err, patientRepo.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, availability.ErrInvalidFormat),
		errors.Is(err, availability.ErrInvalidDuration),
		errors.Is(err, availability.ErrInvalidSlot),
		errors.Is(err, availability.ErrInvalidDay),
		errors.Is(err, availability.ErrDuplicateSlot),
		errors.Is(err, availability.ErrSlotNotFound),
		errors.Is(err, availability.ErrInvalidDate),
		errors.Is(err, appointment.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
	}
}
