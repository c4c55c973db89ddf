package handlers

import (
	"TeleMed/services"
	"errors"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

func (h *PrescriptionHandler) IssuePrescription(c *gin.Context) {
	var input services.PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	prescription, err := h.service.Issue(c, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			c.JSON(404, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrNoSlotForDate):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(201, prescription)
}

func (h *PrescriptionHandler) GetPatientPrescriptions(c *gin.Context) {
	patientID := c.Param("patient_id")
	prescriptions, err := h.service.ListForPatient(c, patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, prescriptions)
}

func (h *PrescriptionHandler) ConfirmPrescriptionSlot(c *gin.Context) {
	id := c.Param("prescription_id")
	var payload struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if payload.Action != "confirm" && payload.Action != "decline" {
		c.JSON(400, gin.H{"error": "action must be confirm or decline"})
		return
	}
	prescription, err := h.service.ConfirmSlot(c, id, payload.Action == "confirm")
	if err != nil {
		if errors.Is(err, services.ErrPrescriptionNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, prescription)
}
