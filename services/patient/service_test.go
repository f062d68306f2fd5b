package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	patientRepo "pulmocare/database/repository/patient"
	"pulmocare/models"
)

type stubRepo struct {
	patients map[string]*models.Patient
}

func newStubRepo(patients ...*models.Patient) *stubRepo {
	r := &stubRepo{patients: map[string]*models.Patient{}}
	for _, p := range patients {
		r.patients[p.ID] = p
	}
	return r
}

func (r *stubRepo) Create(_ context.Context, p *models.Patient) error {
	r.patients[p.ID] = p
	return nil
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, patientRepo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubRepo) GetAll(context.Context) ([]models.Patient, error) { return nil, nil }

func (r *stubRepo) Update(_ context.Context, p *models.Patient) error {
	r.patients[p.ID] = p
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id string) error {
	delete(r.patients, id)
	return nil
}

func (r *stubRepo) Count(context.Context) (int64, error) {
	return int64(len(r.patients)), nil
}

func (r *stubRepo) EnsureIndexes(context.Context) error { return nil }

func TestUpdateMergesMedicalFields(t *testing.T) {
	svc := &DefaultPatientService{Repo: newStubRepo(&models.Patient{
		ID: "p1", FirstName: "Sam", Allergies: []string{"penicillin"},
	})}

	allergies := []string{"penicillin", "latex"}
	patient, err := svc.Update(context.Background(), "p1", models.PatientPatch{Allergies: &allergies})
	require.NoError(t, err)
	assert.Equal(t, allergies, patient.Allergies)
	assert.Equal(t, "Sam", patient.FirstName)
}

func TestCount(t *testing.T) {
	svc := &DefaultPatientService{Repo: newStubRepo(
		&models.Patient{ID: "p1"}, &models.Patient{ID: "p2"}, &models.Patient{ID: "p3"},
	)}

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
