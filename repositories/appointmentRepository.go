package repositories

import (
	"TeleMed/database"
	"TeleMed/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%s_%s", appointment.PatientID, appointment.ID))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := database.DB.First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// GetByPatient lists a patient's appointments, newest first. Doctor display
// fields are fetched separately with GetDoctorsByIDs.
func (r *AppointmentRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointments []models.Appointment
	err := database.DB.
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments for patient: %w", err)
	}
	return appointments, nil
}

// GetDoctorsByIDs is the second query of the appointment listing: one IN
// lookup for the doctor IDs collected from the appointment rows.
func (r *AppointmentRepository) GetDoctorsByIDs(ctx context.Context, ids []string) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(ids) == 0 {
		return nil, nil
	}
	var doctors []models.Doctor
	err := database.DB.
		Select("id, full_name, specialization").
		Where("id IN ?", ids).
		Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get doctors for appointments: %w", err)
	}
	return doctors, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%s", id))
	if err != nil {
		return err
	}
	defer release()

	result := database.DB.Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("appointment not found")
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%s", id))
	if err != nil {
		return err
	}
	defer release()

	result := database.DB.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("appointment not found")
	}
	return nil
}
