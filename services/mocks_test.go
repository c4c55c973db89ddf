package services

import (
	"TeleMed/models"
	"context"

	"github.com/stretchr/testify/mock"
)

type mockDoctorStore struct {
	mock.Mock
}

func (m *mockDoctorStore) Create(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *mockDoctorStore) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *mockDoctorStore) GetAvailable(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *mockDoctorStore) GetAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *mockDoctorStore) Update(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *mockDoctorStore) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type mockPatientStore struct {
	mock.Mock
}

func (m *mockPatientStore) Create(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *mockPatientStore) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *mockPatientStore) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *mockPatientStore) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

type mockConsultationStore struct {
	mock.Mock
}

func (m *mockConsultationStore) Create(ctx context.Context, request *models.ConsultationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockConsultationStore) GetByID(ctx context.Context, id string) (*models.ConsultationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConsultationRequest), args.Error(1)
}

func (m *mockConsultationStore) GetByDoctor(ctx context.Context, doctorID, status, consultationType string) ([]models.ConsultationRequest, error) {
	args := m.Called(ctx, doctorID, status, consultationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ConsultationRequest), args.Error(1)
}

func (m *mockConsultationStore) GetByPatient(ctx context.Context, patientID string) ([]models.ConsultationRequest, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ConsultationRequest), args.Error(1)
}

func (m *mockConsultationStore) UpdateStatus(ctx context.Context, id, status, doctorResponse string) error {
	args := m.Called(ctx, id, status, doctorResponse)
	return args.Error(0)
}

type mockScheduleStore struct {
	mock.Mock
}

func (m *mockScheduleStore) Create(ctx context.Context, slot *models.ScheduleSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *mockScheduleStore) GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScheduleSlot), args.Error(1)
}

func (m *mockScheduleStore) GetAvailableByDoctor(ctx context.Context, doctorID, fromDate string, limit int) ([]models.ScheduleSlot, error) {
	args := m.Called(ctx, doctorID, fromDate, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScheduleSlot), args.Error(1)
}

func (m *mockScheduleStore) GetByDoctor(ctx context.Context, doctorID string) ([]models.ScheduleSlot, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScheduleSlot), args.Error(1)
}

func (m *mockScheduleStore) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	args := m.Called(ctx, id, fromStatus, toStatus)
	return args.Error(0)
}

func (m *mockScheduleStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPrescriptionStore struct {
	mock.Mock
}

func (m *mockPrescriptionStore) CreateWithRequestCompletion(ctx context.Context, prescription *models.Prescription, doctorResponse string) error {
	args := m.Called(ctx, prescription, doctorResponse)
	return args.Error(0)
}

func (m *mockPrescriptionStore) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prescription), args.Error(1)
}

func (m *mockPrescriptionStore) GetByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *mockPrescriptionStore) GetConfirmedByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *mockPrescriptionStore) UpdateConsultationStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockAppointmentStore struct {
	mock.Mock
}

func (m *mockAppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *mockAppointmentStore) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentStore) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentStore) GetDoctorsByIDs(ctx context.Context, ids []string) ([]models.Doctor, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *mockAppointmentStore) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockAppointmentStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) ConsultationResponse(email, doctorName, status, response string) error {
	args := m.Called(email, doctorName, status, response)
	return args.Error(0)
}

func (m *mockNotifier) PrescriptionIssued(email, doctorName, slotDate, slotTime string) error {
	args := m.Called(email, doctorName, slotDate, slotTime)
	return args.Error(0)
}
