// File: services/appointment/interface.go
package appointment

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	appointmentRepo "pulmocare/database/repository/appointment"
	doctorRepo "pulmocare/database/repository/doctor"
	patientRepo "pulmocare/database/repository/patient"
	"pulmocare/models"
)

// Clock abstracts wall-clock time so status sweeps are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type Service interface {
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID, status string) ([]models.Appointment, error)
	ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListTodayByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	CurrentByDoctor(ctx context.Context, doctorID string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID, status string) ([]models.Appointment, error)
	Update(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) error
	MarkPast(ctx context.Context, id string) (*models.Appointment, error)
	SweepStatuses(ctx context.Context) (int, error)
	CheckSlot(ctx context.Context, doctorID, date, start, end string) (bool, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Doctors      doctorRepo.DoctorRepository
	Patients     patientRepo.PatientRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
	Clock        Clock
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}
