package services

import (
	"TeleMed/models"
	"context"

	"github.com/google/uuid"
)

type PatientService struct {
	patients PatientStore
}

func NewPatientService(patients PatientStore) *PatientService {
	return &PatientService{patients: patients}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	return s.patients.Create(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *PatientService) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return s.patients.GetByUserID(ctx, userID)
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	return s.patients.Update(ctx, patient)
}
