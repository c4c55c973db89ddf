package services

import (
	"TeleMed/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPrescriptionFixture() (*PrescriptionService, *mockPrescriptionStore, *mockConsultationStore, *mockScheduleStore, *mockDoctorStore, *mockNotifier) {
	prescriptions := new(mockPrescriptionStore)
	requests := new(mockConsultationStore)
	schedule := new(mockScheduleStore)
	doctors := new(mockDoctorStore)
	notifier := new(mockNotifier)
	service := NewPrescriptionService(prescriptions, requests, schedule, doctors, notifier)
	return service, prescriptions, requests, schedule, doctors, notifier
}

func validPrescriptionInput() PrescriptionInput {
	return PrescriptionInput{
		DoctorID:              "doc-1",
		ConsultationRequestID: "req-1",
		Medications:           "Ibuprofen 400mg",
		DosageInstructions:    "One tablet every eight hours",
	}
}

func TestIssueCompletesRequestInOneStoreCall(t *testing.T) {
	service, prescriptions, requests, _, _, _ := newPrescriptionFixture()

	requests.On("GetByID", mock.Anything, "req-1").Return(&models.ConsultationRequest{
		ID:        "req-1",
		PatientID: "pat-1",
		Status:    string(models.ConsultationConfirmed),
	}, nil)
	prescriptions.On("CreateWithRequestCompletion", mock.Anything,
		mock.AnythingOfType("*models.Prescription"),
		"Prescription provided. Available slots for follow-up consultations shown below.",
	).Return(nil)

	prescription, err := service.Issue(context.Background(), validPrescriptionInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, prescription.ID)
	assert.Equal(t, "pat-1", prescription.PatientID)
	assert.Equal(t, string(models.SlotConfirmationPending), prescription.ConsultationStatus)
	// The request status update happens inside the same store call, so no
	// separate UpdateStatus is issued.
	requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	prescriptions.AssertExpectations(t)
}

func TestIssueCopiesSelectedSlot(t *testing.T) {
	service, prescriptions, requests, schedule, _, _ := newPrescriptionFixture()

	requests.On("GetByID", mock.Anything, "req-1").Return(&models.ConsultationRequest{
		ID:        "req-1",
		PatientID: "pat-1",
		Status:    string(models.ConsultationAccepted),
	}, nil)
	schedule.On("GetAvailableByDoctor", mock.Anything, "doc-1", "2026-09-03", 10).Return([]models.ScheduleSlot{
		{ID: "slot-1", Date: "2026-09-03", StartTime: "14:00", EndTime: "14:30"},
	}, nil)
	prescriptions.On("CreateWithRequestCompletion", mock.Anything,
		mock.AnythingOfType("*models.Prescription"),
		"Prescription provided with consultation slot scheduled for 2026-09-03 at 14:00",
	).Return(nil)

	input := validPrescriptionInput()
	input.FollowUpDate = "2026-09-03"
	prescription, err := service.Issue(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-03", prescription.SelectedConsultationDate)
	assert.Equal(t, "14:00", prescription.SelectedConsultationTime)
}

func TestIssueFailsWhenNoSlotOnDate(t *testing.T) {
	service, prescriptions, requests, schedule, _, _ := newPrescriptionFixture()

	requests.On("GetByID", mock.Anything, "req-1").Return(&models.ConsultationRequest{
		ID:     "req-1",
		Status: string(models.ConsultationAccepted),
	}, nil)
	schedule.On("GetAvailableByDoctor", mock.Anything, "doc-1", "2026-09-03", 10).Return([]models.ScheduleSlot{
		{ID: "slot-1", Date: "2026-09-04", StartTime: "09:00"},
	}, nil)

	input := validPrescriptionInput()
	input.FollowUpDate = "2026-09-03"
	_, err := service.Issue(context.Background(), input)

	assert.ErrorIs(t, err, ErrNoSlotForDate)
	prescriptions.AssertNotCalled(t, "CreateWithRequestCompletion", mock.Anything, mock.Anything, mock.Anything)
}

func TestIssueUnknownRequest(t *testing.T) {
	service, _, requests, _, _, _ := newPrescriptionFixture()

	requests.On("GetByID", mock.Anything, "req-1").Return(nil, nil)

	_, err := service.Issue(context.Background(), validPrescriptionInput())

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestIssueRejectsCompletedRequest(t *testing.T) {
	service, prescriptions, requests, _, _, _ := newPrescriptionFixture()

	requests.On("GetByID", mock.Anything, "req-1").Return(&models.ConsultationRequest{
		ID:     "req-1",
		Status: string(models.ConsultationCompleted),
	}, nil)

	_, err := service.Issue(context.Background(), validPrescriptionInput())

	assert.ErrorIs(t, err, ErrInvalidTransition)
	prescriptions.AssertNotCalled(t, "CreateWithRequestCompletion", mock.Anything, mock.Anything, mock.Anything)
}

func TestIssueRejectsMissingDosage(t *testing.T) {
	service, prescriptions, requests, _, _, _ := newPrescriptionFixture()

	requests.On("GetByID", mock.Anything, "req-1").Return(&models.ConsultationRequest{
		ID:     "req-1",
		Status: string(models.ConsultationAccepted),
	}, nil)

	input := validPrescriptionInput()
	input.DosageInstructions = ""
	_, err := service.Issue(context.Background(), input)

	assert.Error(t, err)
	prescriptions.AssertNotCalled(t, "CreateWithRequestCompletion", mock.Anything, mock.Anything, mock.Anything)
}

func TestIssueToleratesNotificationFailure(t *testing.T) {
	service, prescriptions, requests, _, doctors, notifier := newPrescriptionFixture()

	requests.On("GetByID", mock.Anything, "req-1").Return(&models.ConsultationRequest{
		ID:        "req-1",
		PatientID: "pat-1",
		Status:    string(models.ConsultationConfirmed),
		Patient:   models.Patient{Email: "patient@example.com"},
	}, nil)
	prescriptions.On("CreateWithRequestCompletion", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	doctors.On("GetByID", mock.Anything, "doc-1").Return(&models.Doctor{FullName: "Dr. Chen"}, nil)
	notifier.On("PrescriptionIssued", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	_, err := service.Issue(context.Background(), validPrescriptionInput())

	assert.NoError(t, err)
}

func TestConfirmSlot(t *testing.T) {
	service, prescriptions, _, _, _, _ := newPrescriptionFixture()

	prescriptions.On("GetByID", mock.Anything, "rx-1").Return(&models.Prescription{
		ID:                 "rx-1",
		ConsultationStatus: string(models.SlotConfirmationPending),
	}, nil)
	prescriptions.On("UpdateConsultationStatus", mock.Anything, "rx-1", "confirmed").Return(nil)

	prescription, err := service.ConfirmSlot(context.Background(), "rx-1", true)

	assert.NoError(t, err)
	assert.Equal(t, string(models.SlotConfirmationConfirmed), prescription.ConsultationStatus)
}

func TestConfirmSlotDecline(t *testing.T) {
	service, prescriptions, _, _, _, _ := newPrescriptionFixture()

	prescriptions.On("GetByID", mock.Anything, "rx-1").Return(&models.Prescription{
		ID:                 "rx-1",
		ConsultationStatus: string(models.SlotConfirmationPending),
	}, nil)
	prescriptions.On("UpdateConsultationStatus", mock.Anything, "rx-1", "declined").Return(nil)

	prescription, err := service.ConfirmSlot(context.Background(), "rx-1", false)

	assert.NoError(t, err)
	assert.Equal(t, string(models.SlotConfirmationDeclined), prescription.ConsultationStatus)
}

func TestConfirmSlotIsOneShot(t *testing.T) {
	service, prescriptions, _, _, _, _ := newPrescriptionFixture()

	prescriptions.On("GetByID", mock.Anything, "rx-1").Return(&models.Prescription{
		ID:                 "rx-1",
		ConsultationStatus: string(models.SlotConfirmationConfirmed),
	}, nil)

	_, err := service.ConfirmSlot(context.Background(), "rx-1", false)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	prescriptions.AssertNotCalled(t, "UpdateConsultationStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmSlotUnknownPrescription(t *testing.T) {
	service, prescriptions, _, _, _, _ := newPrescriptionFixture()

	prescriptions.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := service.ConfirmSlot(context.Background(), "missing", true)

	assert.ErrorIs(t, err, ErrPrescriptionNotFound)
}
