package utils

import (
	"TeleMed/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConsultationRequest(t *testing.T) {
	valid := models.ConsultationRequest{
		DoctorID:         "doc-1",
		Symptoms:         "persistent cough",
		ConsultationType: "video",
	}
	assert.NoError(t, ValidateConsultationRequest(valid))

	missingSymptoms := valid
	missingSymptoms.Symptoms = ""
	assert.Error(t, ValidateConsultationRequest(missingSymptoms))

	badType := valid
	badType.ConsultationType = "phone"
	assert.Error(t, ValidateConsultationRequest(badType))
}

func TestValidateScheduleSlot(t *testing.T) {
	valid := models.ScheduleSlot{
		DoctorID:  "doc-1",
		Date:      "2026-09-01",
		StartTime: "09:00",
		EndTime:   "09:30",
	}
	assert.NoError(t, ValidateScheduleSlot(valid))
}

func TestValidateScheduleSlotRejectsEndBeforeStart(t *testing.T) {
	slot := models.ScheduleSlot{
		DoctorID:  "doc-1",
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "09:30",
	}
	assert.ErrorIs(t, ValidateScheduleSlot(slot), ErrEndTimeNotAfterStart)

	slot.EndTime = "10:00"
	assert.ErrorIs(t, ValidateScheduleSlot(slot), ErrEndTimeNotAfterStart)
}

func TestValidateScheduleSlotRejectsBadFormats(t *testing.T) {
	slot := models.ScheduleSlot{
		DoctorID:  "doc-1",
		Date:      "01-09-2026",
		StartTime: "09:00",
		EndTime:   "09:30",
	}
	assert.Error(t, ValidateScheduleSlot(slot))

	slot.Date = "2026-09-01"
	slot.StartTime = "9am"
	assert.Error(t, ValidateScheduleSlot(slot))
}

func TestValidatePrescription(t *testing.T) {
	valid := models.Prescription{
		DoctorID:              "doc-1",
		ConsultationRequestID: "req-1",
		Medications:           "Amoxicillin 500mg",
		DosageInstructions:    "One capsule three times daily",
	}
	assert.NoError(t, ValidatePrescription(valid))

	missingDosage := valid
	missingDosage.DosageInstructions = ""
	assert.Error(t, ValidatePrescription(missingDosage))
}

func TestValidateFeedback(t *testing.T) {
	valid := models.Feedback{
		FullName: "Jordan Smith",
		Email:    "jordan@example.com",
		Category: "usability",
		Rating:   4,
		Message:  "Booking a consultation was quick.",
	}
	assert.NoError(t, ValidateFeedback(valid))

	badRating := valid
	badRating.Rating = 6
	assert.Error(t, ValidateFeedback(badRating))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, ValidateFeedback(badEmail))
}
