// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"pulmocare/database"
	"pulmocare/models"
)

var (
	ErrNotFound = errors.New("appointment not found")
	// ErrDuplicateBooking is returned when an insert collides with the unique
	// (doctorId, date, startTime) index.
	ErrDuplicateBooking = errors.New("an appointment already exists for this doctor, date and time")
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]models.Appointment, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorAndStatus(ctx context.Context, doctorID, status string) ([]models.Appointment, error)
	FindByPatientAndStatus(ctx context.Context, patientID, status string) ([]models.Appointment, error)
	FindByStatus(ctx context.Context, status string) ([]models.Appointment, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
