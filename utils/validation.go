package utils

import (
	"TeleMed/models"
	"errors"
	"log"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrEndTimeNotAfterStart = errors.New("end time must be after start time")
	ErrBadTimeFormat        = errors.New("time must be in HH:MM format")
	ErrBadDateFormat        = errors.New("date must be in YYYY-MM-DD format")
)

var consultationTypes = []interface{}{"video", "chat"}

// ValidateConsultationRequest validates a consultation request before it is
// written. Validation failures abort the operation before any network call.
func ValidateConsultationRequest(request models.ConsultationRequest) error {
	err := validation.ValidateStruct(&request,
		validation.Field(&request.DoctorID, validation.Required),
		validation.Field(&request.Symptoms, validation.Required.Error("symptoms cannot be blank")),
		validation.Field(&request.ConsultationType, validation.Required, validation.In(consultationTypes...)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateScheduleSlot validates a new schedule slot, including that the
// end time falls after the start time.
func ValidateScheduleSlot(slot models.ScheduleSlot) error {
	err := validation.ValidateStruct(&slot,
		validation.Field(&slot.DoctorID, validation.Required),
		validation.Field(&slot.Date, validation.Required, validation.By(validateDate)),
		validation.Field(&slot.StartTime, validation.Required, validation.By(validateClockTime)),
		validation.Field(&slot.EndTime, validation.Required, validation.By(validateClockTime)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
		return err
	}

	start, _ := time.Parse("15:04", slot.StartTime)
	end, _ := time.Parse("15:04", slot.EndTime)
	if !end.After(start) {
		log.Printf("Validation error: %v\n", ErrEndTimeNotAfterStart)
		return ErrEndTimeNotAfterStart
	}
	return nil
}

// ValidatePrescription validates a prescription before issuing.
func ValidatePrescription(prescription models.Prescription) error {
	err := validation.ValidateStruct(&prescription,
		validation.Field(&prescription.DoctorID, validation.Required),
		validation.Field(&prescription.ConsultationRequestID, validation.Required),
		validation.Field(&prescription.Medications, validation.Required.Error("medications cannot be blank")),
		validation.Field(&prescription.DosageInstructions, validation.Required.Error("dosage instructions cannot be blank")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateFeedback validates a feedback submission.
func ValidateFeedback(feedback models.Feedback) error {
	err := validation.ValidateStruct(&feedback,
		validation.Field(&feedback.FullName, validation.Required),
		validation.Field(&feedback.Email, validation.Required, is.Email),
		validation.Field(&feedback.Category, validation.Required),
		validation.Field(&feedback.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&feedback.Message, validation.Required.Error("feedback message cannot be blank")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// validateClockTime checks the HH:MM wall-clock format the calendar UI sends.
func validateClockTime(value interface{}) error {
	raw, _ := value.(string)
	if _, err := time.Parse("15:04", raw); err != nil {
		return ErrBadTimeFormat
	}
	return nil
}

// validateDate checks the YYYY-MM-DD format.
func validateDate(value interface{}) error {
	raw, _ := value.(string)
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return ErrBadDateFormat
	}
	return nil
}
