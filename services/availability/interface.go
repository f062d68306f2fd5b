// File: services/availability/interface.go
package availability

import (
	"context"

	"github.com/go-redis/redis/v8"

	appointmentRepo "pulmocare/database/repository/appointment"
	doctorRepo "pulmocare/database/repository/doctor"
	"pulmocare/models"
)

type Service interface {
	GetAvailability(ctx context.Context, doctorID string) (*models.WeeklyTemplate, error)
	SetAvailability(ctx context.Context, doctorID string, patch models.AvailabilityPatch) (*models.Doctor, error)
	AddSlot(ctx context.Context, doctorID, day, start, end string) (*models.Doctor, error)
	RemoveSlot(ctx context.Context, doctorID, day, start string) (*models.Doctor, error)
	AppendSlots(ctx context.Context, doctorID string, byDay map[string][]models.TimeInterval) (*models.Doctor, error)
	ApplyStandardSchedule(ctx context.Context, doctorID string, days []string, dailyStart, dailyEnd string) (*models.Doctor, error)
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.TimeInterval, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Doctors      doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
}
