package services

import (
	"TeleMed/models"
	"context"

	"github.com/google/uuid"
)

// AppointmentWithDoctor pairs an appointment with the doctor display
// fields resolved by the second lookup.
type AppointmentWithDoctor struct {
	models.Appointment
	Doctor *models.Doctor `json:"doctor,omitempty"`
}

type AppointmentService struct {
	appointments AppointmentStore
}

func NewAppointmentService(appointments AppointmentStore) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

// Create books a direct appointment. Without a prior consultation request
// the linking column carries the direct-booking placeholder.
func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.ConsultationRequestID == "" {
		appointment.ConsultationRequestID = models.DirectBookingRequestID
	}
	if appointment.Status == "" {
		appointment.Status = "scheduled"
	}
	return s.appointments.Create(ctx, appointment)
}

// ListForPatient lists the patient's appointments and resolves the doctor
// display fields with a single IN query over the collected doctor IDs.
func (s *AppointmentService) ListForPatient(ctx context.Context, patientID string) ([]AppointmentWithDoctor, error) {
	appointments, err := s.appointments.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var doctorIDs []string
	for _, appointment := range appointments {
		if !seen[appointment.DoctorID] {
			seen[appointment.DoctorID] = true
			doctorIDs = append(doctorIDs, appointment.DoctorID)
		}
	}

	doctors, err := s.appointments.GetDoctorsByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, err
	}
	doctorsByID := make(map[string]*models.Doctor, len(doctors))
	for i := range doctors {
		doctorsByID[doctors[i].ID] = &doctors[i]
	}

	result := make([]AppointmentWithDoctor, 0, len(appointments))
	for _, appointment := range appointments {
		result = append(result, AppointmentWithDoctor{
			Appointment: appointment,
			Doctor:      doctorsByID[appointment.DoctorID],
		})
	}
	return result, nil
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.appointments.UpdateStatus(ctx, id, status)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.appointments.Delete(ctx, id)
}
