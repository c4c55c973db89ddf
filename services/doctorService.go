package services

import (
	"TeleMed/matching"
	"TeleMed/models"
	"context"

	"github.com/google/uuid"
)

type DoctorService struct {
	doctors DoctorStore
}

func NewDoctorService(doctors DoctorStore) *DoctorService {
	return &DoctorService{doctors: doctors}
}

func (s *DoctorService) Create(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	return s.doctors.Create(ctx, doctor)
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *DoctorService) GetAvailable(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors.GetAvailable(ctx)
}

func (s *DoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors.GetAll(ctx)
}

func (s *DoctorService) Update(ctx context.Context, doctor *models.Doctor) error {
	return s.doctors.Update(ctx, doctor)
}

func (s *DoctorService) SetAvailability(ctx context.Context, id string, available bool) error {
	return s.doctors.SetAvailability(ctx, id, available)
}

// Match ranks the currently available doctors against the patient's
// symptoms and category.
func (s *DoctorService) Match(ctx context.Context, symptoms, category string) ([]matching.RankedDoctor, error) {
	doctors, err := s.doctors.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return matching.Rank(symptoms, category, doctors), nil
}
