package handlers

import (
	"TeleMed/services"
	"errors"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	service  *services.ConsultationService
	bookings *services.BookingsService
}

func NewConsultationHandler(service *services.ConsultationService, bookings *services.BookingsService) *ConsultationHandler {
	return &ConsultationHandler{service: service, bookings: bookings}
}

func (h *ConsultationHandler) CreateConsultationRequest(c *gin.Context) {
	var input services.ConsultationRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	request, err := h.service.Create(c, input)
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, request)
}

func (h *ConsultationHandler) GetConsultationRequest(c *gin.Context) {
	id := c.Param("request_id")
	request, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if request == nil {
		c.JSON(404, gin.H{"error": "Consultation request not found"})
		return
	}
	c.JSON(200, request)
}

func (h *ConsultationHandler) GetDoctorConsultationRequests(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	status := c.Query("status")
	consultationType := c.Query("type")
	requests, err := h.service.ListForDoctor(c, doctorID, status, consultationType)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, requests)
}

func (h *ConsultationHandler) GetPatientConsultationRequests(c *gin.Context) {
	patientID := c.Param("patient_id")
	requests, err := h.service.ListForPatient(c, patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, requests)
}

func (h *ConsultationHandler) RespondToConsultationRequest(c *gin.Context) {
	id := c.Param("request_id")
	var payload struct {
		Action  string `json:"action"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	request, err := h.service.Respond(c, id, payload.Action, payload.Message)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}
	c.JSON(200, request)
}

func (h *ConsultationHandler) ConfirmConsultationSession(c *gin.Context) {
	id := c.Param("request_id")
	var payload struct {
		Action  string `json:"action"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	request, err := h.service.ConfirmSession(c, id, payload.Action, payload.Message)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}
	c.JSON(200, request)
}

// GetDoctorBookings merges accepted requests and confirmed prescription
// follow-ups for the given modality.
func (h *ConsultationHandler) GetDoctorBookings(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	consultationType := c.Query("type")
	bookings, err := h.bookings.ListForDoctor(c, doctorID, consultationType)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, bookings)
}

func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrEmptyResponse):
		c.JSON(400, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}
