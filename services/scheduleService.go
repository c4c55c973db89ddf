package services

import (
	"TeleMed/models"
	"TeleMed/utils"
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSlotLimit caps slot listings; the patient widget asks for 5.
const DefaultSlotLimit = 10

type ScheduleService struct {
	schedule ScheduleStore
}

func NewScheduleService(schedule ScheduleStore) *ScheduleService {
	return &ScheduleService{schedule: schedule}
}

// CreateSlot validates and stores a new available slot for the doctor.
func (s *ScheduleService) CreateSlot(ctx context.Context, slot *models.ScheduleSlot) error {
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.Status == "" {
		slot.Status = string(models.ScheduleSlotAvailable)
	}
	if err := utils.ValidateScheduleSlot(*slot); err != nil {
		return err
	}
	return s.schedule.Create(ctx, slot)
}

// AvailableSlots returns the doctor's bookable slots from today onward.
func (s *ScheduleService) AvailableSlots(ctx context.Context, doctorID string, limit int) ([]models.ScheduleSlot, error) {
	if limit <= 0 || limit > DefaultSlotLimit {
		limit = DefaultSlotLimit
	}
	today := time.Now().Format("2006-01-02")
	return s.schedule.GetAvailableByDoctor(ctx, doctorID, today, limit)
}

// AllSlots returns the doctor's full schedule for the manager view.
func (s *ScheduleService) AllSlots(ctx context.Context, doctorID string) ([]models.ScheduleSlot, error) {
	return s.schedule.GetByDoctor(ctx, doctorID)
}

// BookSlot moves an available slot to booked.
func (s *ScheduleService) BookSlot(ctx context.Context, id string) error {
	return s.schedule.UpdateStatus(ctx, id, string(models.ScheduleSlotAvailable), string(models.ScheduleSlotBooked))
}

// CompleteSlot moves a booked slot to completed.
func (s *ScheduleService) CompleteSlot(ctx context.Context, id string) error {
	return s.schedule.UpdateStatus(ctx, id, string(models.ScheduleSlotBooked), string(models.ScheduleSlotCompleted))
}

// DeleteSlot hard-removes a slot while it is still available. The store
// enforces the status guard in the delete itself.
func (s *ScheduleService) DeleteSlot(ctx context.Context, id string) error {
	return s.schedule.Delete(ctx, id)
}
