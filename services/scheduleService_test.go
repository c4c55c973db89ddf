package services

import (
	"TeleMed/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateSlotDefaultsStatusAndID(t *testing.T) {
	schedule := new(mockScheduleStore)
	service := NewScheduleService(schedule)

	schedule.On("Create", mock.Anything, mock.AnythingOfType("*models.ScheduleSlot")).Return(nil)

	slot := &models.ScheduleSlot{
		DoctorID:  "doc-1",
		Date:      "2026-09-01",
		StartTime: "09:00",
		EndTime:   "09:30",
	}
	err := service.CreateSlot(context.Background(), slot)

	assert.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, string(models.ScheduleSlotAvailable), slot.Status)
}

func TestCreateSlotRejectsInvalidTimes(t *testing.T) {
	schedule := new(mockScheduleStore)
	service := NewScheduleService(schedule)

	slot := &models.ScheduleSlot{
		DoctorID:  "doc-1",
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "09:00",
	}
	err := service.CreateSlot(context.Background(), slot)

	assert.Error(t, err)
	schedule.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAvailableSlotsClampsLimit(t *testing.T) {
	schedule := new(mockScheduleStore)
	service := NewScheduleService(schedule)
	today := time.Now().Format("2006-01-02")

	schedule.On("GetAvailableByDoctor", mock.Anything, "doc-1", today, 5).Return([]models.ScheduleSlot{}, nil)
	schedule.On("GetAvailableByDoctor", mock.Anything, "doc-2", today, DefaultSlotLimit).Return([]models.ScheduleSlot{}, nil)

	_, err := service.AvailableSlots(context.Background(), "doc-1", 5)
	assert.NoError(t, err)

	// Zero and oversized limits both fall back to the default.
	_, err = service.AvailableSlots(context.Background(), "doc-2", 0)
	assert.NoError(t, err)
	_, err = service.AvailableSlots(context.Background(), "doc-2", 100)
	assert.NoError(t, err)

	schedule.AssertExpectations(t)
}

func TestBookAndCompleteSlotPinExpectedStatus(t *testing.T) {
	schedule := new(mockScheduleStore)
	service := NewScheduleService(schedule)

	schedule.On("UpdateStatus", mock.Anything, "slot-1", "available", "booked").Return(nil)
	schedule.On("UpdateStatus", mock.Anything, "slot-1", "booked", "completed").Return(nil)

	assert.NoError(t, service.BookSlot(context.Background(), "slot-1"))
	assert.NoError(t, service.CompleteSlot(context.Background(), "slot-1"))
	schedule.AssertExpectations(t)
}
