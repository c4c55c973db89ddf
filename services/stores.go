package services

import (
	"TeleMed/models"
	"TeleMed/utils"
	"context"
	"log"
)

// Store interfaces decouple the lifecycle services from the repository
// implementations so the flows can be tested against mocks. The concrete
// repositories in TeleMed/repositories satisfy them.

type DoctorStore interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetAvailable(ctx context.Context) ([]models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	SetAvailability(ctx context.Context, id string, available bool) error
}

type PatientStore interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByUserID(ctx context.Context, userID string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
}

type ConsultationStore interface {
	Create(ctx context.Context, request *models.ConsultationRequest) error
	GetByID(ctx context.Context, id string) (*models.ConsultationRequest, error)
	GetByDoctor(ctx context.Context, doctorID, status, consultationType string) ([]models.ConsultationRequest, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.ConsultationRequest, error)
	UpdateStatus(ctx context.Context, id, status, doctorResponse string) error
}

type ScheduleStore interface {
	Create(ctx context.Context, slot *models.ScheduleSlot) error
	GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error)
	GetAvailableByDoctor(ctx context.Context, doctorID, fromDate string, limit int) ([]models.ScheduleSlot, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.ScheduleSlot, error)
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error
	Delete(ctx context.Context, id string) error
}

type PrescriptionStore interface {
	CreateWithRequestCompletion(ctx context.Context, prescription *models.Prescription, doctorResponse string) error
	GetByID(ctx context.Context, id string) (*models.Prescription, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)
	GetConfirmedByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error)
	UpdateConsultationStatus(ctx context.Context, id, status string) error
}

type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	GetDoctorsByIDs(ctx context.Context, ids []string) ([]models.Doctor, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetAll(ctx context.Context) ([]models.Feedback, error)
}

// Notifier sends best-effort patient notifications. Failures are logged by
// the services and never fail the triggering write.
type Notifier interface {
	ConsultationResponse(email, doctorName, status, response string) error
	PrescriptionIssued(email, doctorName, slotDate, slotTime string) error
}

// EmailNotifier delivers notifications over SMTP.
type EmailNotifier struct{}

func NewEmailNotifier() *EmailNotifier {
	return &EmailNotifier{}
}

func (n *EmailNotifier) ConsultationResponse(email, doctorName, status, response string) error {
	return utils.SendConsultationResponseEmail(email, doctorName, status, response)
}

func (n *EmailNotifier) PrescriptionIssued(email, doctorName, slotDate, slotTime string) error {
	return utils.SendPrescriptionEmail(email, doctorName, slotDate, slotTime)
}

func logNotifyFailure(what string, err error) {
	if err != nil {
		log.Printf("Failed to send %s notification: %v", what, err)
	}
}
