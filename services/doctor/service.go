// File: services/doctor/service.go
package doctor

import (
	"context"

	doctorRepo "pulmocare/database/repository/doctor"
	"pulmocare/models"
)

type Service interface {
	Create(ctx context.Context, doctor models.Doctor) (*models.Doctor, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Update(ctx context.Context, id string, patch models.DoctorPatch) (*models.Doctor, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Create(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	if doctor.Availability.SlotsByDay == nil {
		doctor.Availability.SlotsByDay = make(map[string][]models.TimeInterval)
	}
	if err := s.Repo.Create(ctx, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *DefaultDoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

// Update merges profile fields only; availability has its own operations and
// email changes are a separate concern.
func (s *DefaultDoctorService) Update(ctx context.Context, id string, patch models.DoctorPatch) (*models.Doctor, error) {
	doctor, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil {
		doctor.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		doctor.LastName = *patch.LastName
	}
	if patch.Gender != nil {
		doctor.Gender = *patch.Gender
	}
	if patch.Age != nil {
		doctor.Age = *patch.Age
	}
	if patch.Description != nil {
		doctor.Description = *patch.Description
	}
	if patch.Specialty != nil {
		doctor.Specialty = *patch.Specialty
	}
	if patch.Location != nil {
		doctor.Location = *patch.Location
	}
	if patch.CountryCode != nil {
		doctor.CountryCode = *patch.CountryCode
	}
	if patch.Phone != nil {
		doctor.Phone = *patch.Phone
	}
	if patch.MedicalLicense != nil {
		doctor.MedicalLicense = *patch.MedicalLicense
	}
	if err := s.Repo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *DefaultDoctorService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultDoctorService) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}
