package services

import (
	"TeleMed/models"
	"TeleMed/utils"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrNoSlotForDate        = errors.New("no available slot for the selected follow-up date")
)

// PrescriptionInput is what the prescription dialog submits. The follow-up
// date, when present, selects the first available schedule slot on that
// date; its date and start time are copied onto the prescription.
type PrescriptionInput struct {
	DoctorID              string `json:"doctor_id"`
	ConsultationRequestID string `json:"consultation_request_id"`
	Medications           string `json:"medications"`
	DosageInstructions    string `json:"dosage_instructions"`
	Notes                 string `json:"notes"`
	HealthTips            string `json:"health_tips"`
	FollowUpDate          string `json:"follow_up_date"`
}

type PrescriptionService struct {
	prescriptions PrescriptionStore
	requests      ConsultationStore
	schedule      ScheduleStore
	doctors       DoctorStore
	notifier      Notifier
}

func NewPrescriptionService(prescriptions PrescriptionStore, requests ConsultationStore, schedule ScheduleStore, doctors DoctorStore, notifier Notifier) *PrescriptionService {
	return &PrescriptionService{
		prescriptions: prescriptions,
		requests:      requests,
		schedule:      schedule,
		doctors:       doctors,
		notifier:      notifier,
	}
}

// Issue creates a prescription against a consultation request and completes
// the request, in one transaction. Issuing is the only operation that takes
// a request to completed.
func (s *PrescriptionService) Issue(ctx context.Context, input PrescriptionInput) (*models.Prescription, error) {
	request, err := s.requests.GetByID(ctx, input.ConsultationRequestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	current, err := models.ParseConsultationStatus(request.Status)
	if err != nil {
		return nil, err
	}
	if !current.CanTransitionTo(models.ConsultationCompleted) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, models.ConsultationCompleted)
	}

	prescription := &models.Prescription{
		ID:                    uuid.New().String(),
		DoctorID:              input.DoctorID,
		PatientID:             request.PatientID,
		ConsultationRequestID: request.ID,
		Medications:           input.Medications,
		DosageInstructions:    input.DosageInstructions,
		Notes:                 input.Notes,
		HealthTips:            input.HealthTips,
		FollowUpDate:          input.FollowUpDate,
		ConsultationStatus:    string(models.SlotConfirmationPending),
	}
	if err := utils.ValidatePrescription(*prescription); err != nil {
		return nil, err
	}

	doctorResponse := "Prescription provided. Available slots for follow-up consultations shown below."
	if input.FollowUpDate != "" {
		slot, err := s.firstAvailableSlot(ctx, input.DoctorID, input.FollowUpDate)
		if err != nil {
			return nil, err
		}
		// Point-in-time copy: the prescription keeps these values even if
		// the slot is later deleted or rebooked.
		prescription.SelectedConsultationDate = slot.Date
		prescription.SelectedConsultationTime = slot.StartTime
		doctorResponse = fmt.Sprintf("Prescription provided with consultation slot scheduled for %s at %s", slot.Date, slot.StartTime)
	}

	if err := s.prescriptions.CreateWithRequestCompletion(ctx, prescription, doctorResponse); err != nil {
		return nil, err
	}

	s.notifyIssued(ctx, request, prescription)
	return prescription, nil
}

func (s *PrescriptionService) firstAvailableSlot(ctx context.Context, doctorID, date string) (*models.ScheduleSlot, error) {
	slots, err := s.schedule.GetAvailableByDoctor(ctx, doctorID, date, 10)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].Date == date {
			return &slots[i], nil
		}
	}
	return nil, ErrNoSlotForDate
}

// ListForPatient returns the patient's prescriptions with the doctor and
// originating request expanded.
func (s *PrescriptionService) ListForPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return s.prescriptions.GetByPatient(ctx, patientID)
}

// ConfirmSlot records the patient's one-shot decision on the proposed
// follow-up slot. Once confirmed or declined there is no way back to
// pending.
func (s *PrescriptionService) ConfirmSlot(ctx context.Context, prescriptionID string, confirm bool) (*models.Prescription, error) {
	prescription, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	current := models.PrescriptionSlotStatus(prescription.ConsultationStatus)
	next := models.SlotConfirmationDeclined
	if confirm {
		next = models.SlotConfirmationConfirmed
	}
	if !current.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	if err := s.prescriptions.UpdateConsultationStatus(ctx, prescriptionID, string(next)); err != nil {
		return nil, err
	}
	prescription.ConsultationStatus = string(next)
	return prescription, nil
}

func (s *PrescriptionService) notifyIssued(ctx context.Context, request *models.ConsultationRequest, prescription *models.Prescription) {
	if request.Patient.Email == "" {
		return
	}
	doctorName := ""
	if doctor, err := s.doctors.GetByID(ctx, prescription.DoctorID); err == nil && doctor != nil {
		doctorName = doctor.FullName
	}
	logNotifyFailure("prescription", s.notifier.PrescriptionIssued(
		request.Patient.Email, doctorName,
		prescription.SelectedConsultationDate, prescription.SelectedConsultationTime))
}
