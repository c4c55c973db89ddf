package services

import (
	"TeleMed/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateAppointmentDefaultsDirectBooking(t *testing.T) {
	appointments := new(mockAppointmentStore)
	service := NewAppointmentService(appointments)

	appointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	appointment := &models.Appointment{
		PatientID:        "pat-1",
		DoctorID:         "doc-1",
		DateTime:         "2026-09-01 10:00",
		ConsultationType: "video",
	}
	err := service.Create(context.Background(), appointment)

	assert.NoError(t, err)
	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, models.DirectBookingRequestID, appointment.ConsultationRequestID)
	assert.Equal(t, "scheduled", appointment.Status)
}

func TestCreateAppointmentKeepsRequestLink(t *testing.T) {
	appointments := new(mockAppointmentStore)
	service := NewAppointmentService(appointments)

	appointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	appointment := &models.Appointment{
		PatientID:             "pat-1",
		DoctorID:              "doc-1",
		ConsultationRequestID: "req-1",
	}
	err := service.Create(context.Background(), appointment)

	assert.NoError(t, err)
	assert.Equal(t, "req-1", appointment.ConsultationRequestID)
}

func TestListForPatientResolvesDoctors(t *testing.T) {
	appointments := new(mockAppointmentStore)
	service := NewAppointmentService(appointments)

	appointments.On("GetByPatient", mock.Anything, "pat-1").Return([]models.Appointment{
		{ID: "apt-1", DoctorID: "doc-1"},
		{ID: "apt-2", DoctorID: "doc-2"},
		{ID: "apt-3", DoctorID: "doc-1"},
	}, nil)
	appointments.On("GetDoctorsByIDs", mock.Anything, []string{"doc-1", "doc-2"}).Return([]models.Doctor{
		{ID: "doc-1", FullName: "Dr. Chen", Specialization: "Cardiology"},
		{ID: "doc-2", FullName: "Dr. Osei", Specialization: "Dermatology"},
	}, nil)

	enriched, err := service.ListForPatient(context.Background(), "pat-1")

	assert.NoError(t, err)
	assert.Len(t, enriched, 3)
	assert.Equal(t, "Dr. Chen", enriched[0].Doctor.FullName)
	assert.Equal(t, "Dr. Osei", enriched[1].Doctor.FullName)
	// Repeated doctor IDs are deduplicated before the lookup.
	assert.Equal(t, "Dr. Chen", enriched[2].Doctor.FullName)
	appointments.AssertExpectations(t)
}

func TestListForPatientMissingDoctorLeavesNil(t *testing.T) {
	appointments := new(mockAppointmentStore)
	service := NewAppointmentService(appointments)

	appointments.On("GetByPatient", mock.Anything, "pat-1").Return([]models.Appointment{
		{ID: "apt-1", DoctorID: "doc-gone"},
	}, nil)
	appointments.On("GetDoctorsByIDs", mock.Anything, []string{"doc-gone"}).Return([]models.Doctor{}, nil)

	enriched, err := service.ListForPatient(context.Background(), "pat-1")

	assert.NoError(t, err)
	assert.Nil(t, enriched[0].Doctor)
}
