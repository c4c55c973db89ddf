package services

import (
	"TeleMed/models"
	"TeleMed/utils"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrRequestNotFound   = errors.New("consultation request not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrEmptyResponse     = errors.New("response message cannot be blank")
)

// ConsultationRequestInput carries what the symptoms form submits: the
// requesting user, the chosen doctor, and enough profile data to create a
// patient record lazily when none exists yet.
type ConsultationRequestInput struct {
	UserID           string `json:"user_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergency_contact"`
	DoctorID         string `json:"doctor_id"`
	Symptoms         string `json:"symptoms"`
	ConsultationType string `json:"consultation_type"`
	RequestMessage   string `json:"request_message"`
}

// RequestWithUrgency is a consultation request annotated with the derived
// urgency display hint.
type RequestWithUrgency struct {
	models.ConsultationRequest
	Urgency string `json:"urgency"`
}

// Booking is the doctor-side projection that merges accepted consultation
// requests with prescription follow-ups the patient confirmed.
type Booking struct {
	ID               string         `json:"id"`
	PatientID        string         `json:"patient_id"`
	Symptoms         string         `json:"symptoms"`
	ConsultationType string         `json:"consultation_type"`
	Status           string         `json:"status"`
	RequestMessage   string         `json:"request_message"`
	Type             string         `json:"type"`
	ScheduledTime    string         `json:"scheduled_time,omitempty"`
	CreatedAt        string         `json:"created_at"`
	Patient          models.Patient `json:"patient"`

	createdAtSort int64
}

const (
	BookingTypeConsultation          = "consultation"
	BookingTypePrescriptionConfirmed = "prescription_confirmed"
)

type ConsultationService struct {
	requests ConsultationStore
	patients PatientStore
	doctors  DoctorStore
	notifier Notifier
}

func NewConsultationService(requests ConsultationStore, patients PatientStore, doctors DoctorStore, notifier Notifier) *ConsultationService {
	return &ConsultationService{requests: requests, patients: patients, doctors: doctors, notifier: notifier}
}

// Create validates and stores a new consultation request in status pending.
// If the user has no patient profile yet, one is created first from the
// submitted contact data.
func (s *ConsultationService) Create(ctx context.Context, input ConsultationRequestInput) (*models.ConsultationRequest, error) {
	request := &models.ConsultationRequest{
		ID:               uuid.New().String(),
		DoctorID:         input.DoctorID,
		Symptoms:         input.Symptoms,
		ConsultationType: input.ConsultationType,
		RequestMessage:   input.RequestMessage,
		Status:           string(models.ConsultationPending),
	}
	// Validate before the doctor lookup and the lazy patient write; a
	// rejected submission must not persist anything.
	if err := utils.ValidateConsultationRequest(*request); err != nil {
		return nil, err
	}

	doctor, err := s.doctors.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := s.patients.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		// No profile yet: not-found is the signal to create one and carry on.
		patient = &models.Patient{
			ID:               uuid.New().String(),
			UserID:           input.UserID,
			FullName:         input.FullName,
			Email:            input.Email,
			Phone:            input.Phone,
			EmergencyContact: input.EmergencyContact,
		}
		if err := s.patients.Create(ctx, patient); err != nil {
			return nil, err
		}
	}
	request.PatientID = patient.ID

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// GetByID returns one request with the patient expanded, or nil when it
// does not exist.
func (s *ConsultationService) GetByID(ctx context.Context, id string) (*models.ConsultationRequest, error) {
	return s.requests.GetByID(ctx, id)
}

// ListForDoctor returns the doctor's requests with the urgency hint
// attached, optionally filtered by status and modality.
func (s *ConsultationService) ListForDoctor(ctx context.Context, doctorID, status, consultationType string) ([]RequestWithUrgency, error) {
	requests, err := s.requests.GetByDoctor(ctx, doctorID, status, consultationType)
	if err != nil {
		return nil, err
	}
	annotated := make([]RequestWithUrgency, 0, len(requests))
	for _, request := range requests {
		annotated = append(annotated, RequestWithUrgency{
			ConsultationRequest: request,
			Urgency:             request.Urgency(),
		})
	}
	return annotated, nil
}

// ListForPatient returns the patient's own requests.
func (s *ConsultationService) ListForPatient(ctx context.Context, patientID string) ([]models.ConsultationRequest, error) {
	return s.requests.GetByPatient(ctx, patientID)
}

// Respond records the doctor's accept or reject decision on a pending
// request together with a response message, then notifies the patient
// best-effort.
func (s *ConsultationService) Respond(ctx context.Context, requestID, action, message string) (*models.ConsultationRequest, error) {
	var next models.ConsultationStatus
	switch action {
	case "accept":
		next = models.ConsultationAccepted
	case "reject":
		next = models.ConsultationRejected
	default:
		return nil, fmt.Errorf("invalid action: %q", action)
	}
	return s.transition(ctx, requestID, next, message)
}

// ConfirmSession records the doctor's follow-up decision on an accepted
// request: confirm the session itself, or reschedule it.
func (s *ConsultationService) ConfirmSession(ctx context.Context, requestID, action, message string) (*models.ConsultationRequest, error) {
	var next models.ConsultationStatus
	switch action {
	case "confirm":
		next = models.ConsultationConfirmed
	case "reschedule":
		next = models.ConsultationRescheduled
	default:
		return nil, fmt.Errorf("invalid action: %q", action)
	}
	return s.transition(ctx, requestID, next, message)
}

func (s *ConsultationService) transition(ctx context.Context, requestID string, next models.ConsultationStatus, message string) (*models.ConsultationRequest, error) {
	if message == "" {
		return nil, ErrEmptyResponse
	}

	request, err := s.requests.GetByID(ctx, requestID)
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
	if !current.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	if err := s.requests.UpdateStatus(ctx, requestID, string(next), message); err != nil {
		return nil, err
	}
	request.Status = string(next)
	request.DoctorResponse = message

	s.notifyResponse(ctx, request, string(next), message)
	return request, nil
}

func (s *ConsultationService) notifyResponse(ctx context.Context, request *models.ConsultationRequest, status, message string) {
	if request.Patient.Email == "" {
		return
	}
	doctorName := ""
	if doctor, err := s.doctors.GetByID(ctx, request.DoctorID); err == nil && doctor != nil {
		doctorName = doctor.FullName
	}
	logNotifyFailure("consultation response", s.notifier.ConsultationResponse(request.Patient.Email, doctorName, status, message))
}

// BookingsService merges the two booking sources for the doctor dashboard.
type BookingsService struct {
	requests      ConsultationStore
	prescriptions PrescriptionStore
}

func NewBookingsService(requests ConsultationStore, prescriptions PrescriptionStore) *BookingsService {
	return &BookingsService{requests: requests, prescriptions: prescriptions}
}

// ListForDoctor returns the doctor's accepted consultation requests of the
// given modality merged with confirmed prescription follow-ups, newest
// first.
func (s *BookingsService) ListForDoctor(ctx context.Context, doctorID, consultationType string) ([]Booking, error) {
	requests, err := s.requests.GetByDoctor(ctx, doctorID, string(models.ConsultationAccepted), consultationType)
	if err != nil {
		return nil, err
	}
	prescriptions, err := s.prescriptions.GetConfirmedByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	bookings := make([]Booking, 0, len(requests)+len(prescriptions))
	for _, request := range requests {
		bookings = append(bookings, Booking{
			ID:               request.ID,
			PatientID:        request.PatientID,
			Symptoms:         request.Symptoms,
			ConsultationType: request.ConsultationType,
			Status:           request.Status,
			RequestMessage:   request.RequestMessage,
			Type:             BookingTypeConsultation,
			CreatedAt:        request.CreatedAt.Format("2006-01-02 15:04:05"),
			Patient:          request.Patient,
			createdAtSort:    request.CreatedAt.UnixNano(),
		})
	}
	for _, prescription := range prescriptions {
		if prescription.ConsultationRequest.ConsultationType != consultationType {
			continue
		}
		scheduledTime := ""
		if prescription.SelectedConsultationDate != "" && prescription.SelectedConsultationTime != "" {
			scheduledTime = prescription.SelectedConsultationDate + " " + prescription.SelectedConsultationTime
		}
		bookings = append(bookings, Booking{
			ID:               prescription.ID,
			PatientID:        prescription.PatientID,
			Symptoms:         "Follow-up consultation from prescription",
			ConsultationType: prescription.ConsultationRequest.ConsultationType,
			Status:           string(models.ConsultationConfirmed),
			RequestMessage:   fmt.Sprintf("Patient confirmed %s consultation from prescription", consultationType),
			Type:             BookingTypePrescriptionConfirmed,
			ScheduledTime:    scheduledTime,
			CreatedAt:        prescription.CreatedAt.Format("2006-01-02 15:04:05"),
			Patient:          prescription.ConsultationRequest.Patient,
			createdAtSort:    prescription.CreatedAt.UnixNano(),
		})
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].createdAtSort > bookings[j].createdAtSort
	})
	return bookings, nil
}
