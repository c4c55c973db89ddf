package repositories

import (
	"TeleMed/cache"
	"TeleMed/database"
	"TeleMed/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	ConsultationCacheExpiry = 1 * time.Hour
)

type ConsultationRequestRepository struct {
	cache *cache.Cache
}

func NewConsultationRequestRepository(cache *cache.Cache) *ConsultationRequestRepository {
	return &ConsultationRequestRepository{cache: cache}
}

func (r *ConsultationRequestRepository) Create(ctx context.Context, request *models.ConsultationRequest) error {
	release, err := acquireLock(ctx, fmt.Sprintf("consultation_lock:%s", request.ID))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create consultation request: %w", err)
	}
	return r.invalidate(ctx, request.ID)
}

func (r *ConsultationRequestRepository) GetByID(ctx context.Context, id string) (*models.ConsultationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := consultationCacheKey(id)
	cachedRequest, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var request models.ConsultationRequest
		if err := json.Unmarshal([]byte(cachedRequest), &request); err == nil {
			return &request, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get consultation request from cache: %v", err)
	}

	var request models.ConsultationRequest
	err = database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, email, phone, emergency_contact")
		}).
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get consultation request: %w", err)
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal consultation request: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, requestJSON, ConsultationCacheExpiry); err != nil {
		log.Printf("Failed to set consultation request in cache: %v", err)
	}

	return &request, nil
}

// GetByDoctor lists a doctor's requests, newest first, with the patient
// expanded in the same read. Empty filter values are skipped.
func (r *ConsultationRequestRepository) GetByDoctor(ctx context.Context, doctorID, status, consultationType string) ([]models.ConsultationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, email, phone, emergency_contact")
		}).
		Where("doctor_id = ?", doctorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if consultationType != "" {
		query = query.Where("consultation_type = ?", consultationType)
	}

	var requests []models.ConsultationRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to get consultation requests for doctor: %w", err)
	}
	return requests, nil
}

// GetByPatient lists a patient's own requests, newest first.
func (r *ConsultationRequestRepository) GetByPatient(ctx context.Context, patientID string) ([]models.ConsultationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var requests []models.ConsultationRequest
	err := database.DB.
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation requests for patient: %w", err)
	}
	return requests, nil
}

// UpdateStatus writes the new lifecycle status and the doctor's response
// message. Legality of the transition is the service's responsibility.
func (r *ConsultationRequestRepository) UpdateStatus(ctx context.Context, id, status, doctorResponse string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("consultation_lock:%s", id))
	if err != nil {
		return err
	}
	defer release()

	result := database.DB.Model(&models.ConsultationRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          status,
			"doctor_response": doctorResponse,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update consultation request status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("consultation request not found")
	}
	return r.invalidate(ctx, id)
}

func (r *ConsultationRequestRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, consultationCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete consultation request cache: %w", err)
	}
	return nil
}

// consultationCacheKey is shared with PrescriptionRepository, which writes
// the request's status inside the prescription transaction and must
// invalidate the same key.
func consultationCacheKey(id string) string {
	return fmt.Sprintf("consultation_cache:%s", id)
}
