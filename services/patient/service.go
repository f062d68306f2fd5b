// File: services/patient/service.go
package patient

import (
	"context"

	patientRepo "pulmocare/database/repository/patient"
	"pulmocare/models"
)

type Service interface {
	Create(ctx context.Context, patient models.Patient) (*models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, id string, patch models.PatientPatch) (*models.Patient, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}

func (s *DefaultPatientService) Create(ctx context.Context, patient models.Patient) (*models.Patient, error) {
	if err := s.Repo.Create(ctx, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultPatientService) Update(ctx context.Context, id string, patch models.PatientPatch) (*models.Patient, error) {
	patient, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil {
		patient.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		patient.LastName = *patch.LastName
	}
	if patch.Gender != nil {
		patient.Gender = *patch.Gender
	}
	if patch.Age != nil {
		patient.Age = *patch.Age
	}
	if patch.Phone != nil {
		patient.Phone = *patch.Phone
	}
	if patch.Location != nil {
		patient.Location = *patch.Location
	}
	if patch.BloodType != nil {
		patient.BloodType = *patch.BloodType
	}
	if patch.Allergies != nil {
		patient.Allergies = *patch.Allergies
	}
	if patch.Conditions != nil {
		patient.Conditions = *patch.Conditions
	}
	if patch.Medications != nil {
		patient.Medications = *patch.Medications
	}
	if err := s.Repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *DefaultPatientService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultPatientService) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}
