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

type ScheduleSlotRepository struct{}

func NewScheduleSlotRepository() *ScheduleSlotRepository {
	return &ScheduleSlotRepository{}
}

func (r *ScheduleSlotRepository) Create(ctx context.Context, slot *models.ScheduleSlot) error {
	release, err := acquireLock(ctx, fmt.Sprintf("schedule_lock:%s_%s", slot.DoctorID, slot.Date))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Create(slot).Error; err != nil {
		return fmt.Errorf("failed to create schedule slot: %w", err)
	}
	return nil
}

func (r *ScheduleSlotRepository) GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.ScheduleSlot
	err := database.DB.First(&slot, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule slot: %w", err)
	}
	return &slot, nil
}

// GetAvailableByDoctor returns the doctor's available slots from fromDate
// onward, ordered by date then start time. The limit mirrors the calendar
// widgets: 5 in the patient view, 10 in the prescription dialog.
func (r *ScheduleSlotRepository) GetAvailableByDoctor(ctx context.Context, doctorID, fromDate string, limit int) ([]models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slots []models.ScheduleSlot
	err := database.DB.
		Where("doctor_id = ? AND status = ? AND date >= ?", doctorID, string(models.ScheduleSlotAvailable), fromDate).
		Order("date").
		Order("start_time").
		Limit(limit).
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get available slots: %w", err)
	}
	return slots, nil
}

// GetByDoctor returns every slot of the doctor regardless of status.
func (r *ScheduleSlotRepository) GetByDoctor(ctx context.Context, doctorID string) ([]models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slots []models.ScheduleSlot
	err := database.DB.
		Where("doctor_id = ?", doctorID).
		Order("date").
		Order("start_time").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule slots: %w", err)
	}
	return slots, nil
}

// UpdateStatus moves a slot along its lifecycle. The WHERE clause carries
// the expected current status so a stale caller cannot overwrite a
// concurrent transition.
func (r *ScheduleSlotRepository) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("schedule_lock:%s", id))
	if err != nil {
		return err
	}
	defer release()

	result := database.DB.Model(&models.ScheduleSlot{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if result.Error != nil {
		return fmt.Errorf("failed to update slot status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("slot not found or no longer " + fromStatus)
	}
	return nil
}

// Delete hard-removes a slot, but only while it is still available. Booked
// and completed slots are part of the consultation record and stay.
func (r *ScheduleSlotRepository) Delete(ctx context.Context, id string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("schedule_lock:%s", id))
	if err != nil {
		return err
	}
	defer release()

	result := database.DB.
		Where("id = ? AND status = ?", id, string(models.ScheduleSlotAvailable)).
		Delete(&models.ScheduleSlot{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete schedule slot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("slot not found or not available")
	}
	return nil
}
