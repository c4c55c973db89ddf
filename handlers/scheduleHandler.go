package handlers

import (
	"TeleMed/models"
	"TeleMed/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	service *services.ScheduleService
}

func NewScheduleHandler(service *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) CreateScheduleSlot(c *gin.Context) {
	var slot models.ScheduleSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	slot.DoctorID = c.Param("doctor_id")
	if err := h.service.CreateSlot(c, &slot); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, slot)
}

func (h *ScheduleHandler) GetAvailableSlots(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "limit must be a number"})
			return
		}
		limit = parsed
	}
	slots, err := h.service.AvailableSlots(c, doctorID, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, slots)
}

func (h *ScheduleHandler) GetDoctorSlots(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	slots, err := h.service.AllSlots(c, doctorID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, slots)
}

func (h *ScheduleHandler) BookScheduleSlot(c *gin.Context) {
	id := c.Param("slot_id")
	if err := h.service.BookSlot(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Slot booked"})
}

func (h *ScheduleHandler) CompleteScheduleSlot(c *gin.Context) {
	id := c.Param("slot_id")
	if err := h.service.CompleteSlot(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Slot completed"})
}

func (h *ScheduleHandler) DeleteScheduleSlot(c *gin.Context) {
	id := c.Param("slot_id")
	if err := h.service.DeleteSlot(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.Status(204)
}
