package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	doctorRepo "pulmocare/database/repository/doctor"
	"pulmocare/models"
)

type stubRepo struct {
	doctors map[string]*models.Doctor
}

func newStubRepo(doctors ...*models.Doctor) *stubRepo {
	r := &stubRepo{doctors: map[string]*models.Doctor{}}
	for _, d := range doctors {
		r.doctors[d.ID] = d
	}
	return r
}

func (r *stubRepo) Create(_ context.Context, d *models.Doctor) error {
	r.doctors[d.ID] = d
	return nil
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *stubRepo) GetAll(context.Context) ([]models.Doctor, error) { return nil, nil }

func (r *stubRepo) Update(_ context.Context, d *models.Doctor) error {
	r.doctors[d.ID] = d
	return nil
}

func (r *stubRepo) UpdateAvailability(context.Context, string, models.WeeklyTemplate) error {
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id string) error {
	delete(r.doctors, id)
	return nil
}

func (r *stubRepo) Count(context.Context) (int64, error) {
	return int64(len(r.doctors)), nil
}

func (r *stubRepo) EnsureIndexes(context.Context) error { return nil }

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	svc := &DefaultDoctorService{Repo: newStubRepo(&models.Doctor{
		ID: "d1", FirstName: "Jane", LastName: "Doe", Specialty: "pulmonology",
	})}

	specialty := "cardiology"
	doc, err := svc.Update(context.Background(), "d1", models.DoctorPatch{Specialty: &specialty})
	require.NoError(t, err)
	assert.Equal(t, "cardiology", doc.Specialty)
	assert.Equal(t, "Jane", doc.FirstName)
}

func TestCount(t *testing.T) {
	svc := &DefaultDoctorService{Repo: newStubRepo(
		&models.Doctor{ID: "d1"}, &models.Doctor{ID: "d2"},
	)}

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
