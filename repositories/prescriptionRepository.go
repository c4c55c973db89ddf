package repositories

import (
	"TeleMed/cache"
	"TeleMed/database"
	"TeleMed/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PrescriptionRepository struct {
	cache *cache.Cache
}

func NewPrescriptionRepository(cache *cache.Cache) *PrescriptionRepository {
	return &PrescriptionRepository{cache: cache}
}

// CreateWithRequestCompletion inserts the prescription and marks its
// consultation request completed in one transaction, so a failure of either
// write leaves no partial state behind.
func (r *PrescriptionRepository) CreateWithRequestCompletion(ctx context.Context, prescription *models.Prescription, doctorResponse string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("prescription_lock:%s", prescription.ConsultationRequestID))
	if err != nil {
		return err
	}
	defer release()

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prescription).Error; err != nil {
			return fmt.Errorf("failed to create prescription: %w", err)
		}

		result := tx.Model(&models.ConsultationRequest{}).
			Where("id = ?", prescription.ConsultationRequestID).
			Updates(map[string]interface{}{
				"status":          string(models.ConsultationCompleted),
				"doctor_response": doctorResponse,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to complete consultation request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.New("consultation request not found")
		}
		return nil
	})
	if err != nil {
		return err
	}

	// The cached request still carries the pre-completion status; drop it
	// so the lifecycle guards read the completed row.
	if err := r.cache.Delete(ctx, consultationCacheKey(prescription.ConsultationRequestID)); err != nil {
		return fmt.Errorf("failed to delete consultation request cache: %w", err)
	}
	return nil
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescription models.Prescription
	err := database.DB.First(&prescription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}

// GetByPatient lists a patient's prescriptions, newest first, with the
// prescribing doctor and originating request expanded in the same read.
func (r *PrescriptionRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescriptions []models.Prescription
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, specialization")
		}).
		Preload("ConsultationRequest", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, consultation_type")
		}).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get prescriptions for patient: %w", err)
	}
	return prescriptions, nil
}

// GetConfirmedByDoctor returns the doctor's prescriptions whose proposed
// follow-up slot the patient confirmed, feeding the bookings view.
func (r *PrescriptionRepository) GetConfirmedByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescriptions []models.Prescription
	err := database.DB.
		Preload("ConsultationRequest", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, consultation_type, patient_id")
		}).
		Preload("ConsultationRequest.Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, email, phone, emergency_contact")
		}).
		Where("doctor_id = ? AND consultation_status = ?", doctorID, string(models.SlotConfirmationConfirmed)).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get confirmed prescriptions for doctor: %w", err)
	}
	return prescriptions, nil
}

// UpdateConsultationStatus records the patient's one-shot confirm/decline
// of the proposed slot. The WHERE clause pins the current pending status so
// the write cannot repeat or reverse a decision.
func (r *PrescriptionRepository) UpdateConsultationStatus(ctx context.Context, id, status string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("prescription_lock:%s", id))
	if err != nil {
		return err
	}
	defer release()

	result := database.DB.Model(&models.Prescription{}).
		Where("id = ? AND consultation_status = ?", id, string(models.SlotConfirmationPending)).
		Update("consultation_status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update consultation status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("prescription not found or already confirmed or declined")
	}
	return nil
}
