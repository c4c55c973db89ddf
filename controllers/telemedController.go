package controllers

import (
	"TeleMed/handlers"
	"TeleMed/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupTeleMedRoutes(router *gin.Engine, doctorHandler *handlers.DoctorHandler, patientHandler *handlers.PatientHandler, consultationHandler *handlers.ConsultationHandler, scheduleHandler *handlers.ScheduleHandler, prescriptionHandler *handlers.PrescriptionHandler, appointmentHandler *handlers.AppointmentHandler, feedbackHandler *handlers.FeedbackHandler) {
	// Public routes: browsing doctors, matching, and feedback need no token
	router.GET("/doctors", doctorHandler.GetAllDoctors)
	router.GET("/doctors/available", doctorHandler.GetAvailableDoctors)
	router.POST("/doctors/match", doctorHandler.MatchDoctors)
	router.GET("/doctors/:doctor_id", doctorHandler.GetDoctorByID)
	router.GET("/doctors/:doctor_id/schedule_slots/available", scheduleHandler.GetAvailableSlots)
	router.POST("/feedback", feedbackHandler.SubmitFeedback)
	router.GET("/feedback", feedbackHandler.GetAllFeedback)

	auth := middlewares.TokenAuthMiddleware()
	doctorOnly := middlewares.RoleAuthMiddleware("Doctor")

	// Doctor-side routes: requires a valid token with the Doctor role
	router.POST("/doctors", auth, doctorOnly, doctorHandler.CreateDoctor)
	router.PUT("/doctors/:doctor_id", auth, doctorOnly, doctorHandler.UpdateDoctor)
	router.PUT("/doctors/:doctor_id/availability", auth, doctorOnly, doctorHandler.SetDoctorAvailability)
	router.GET("/doctors/:doctor_id/consultation_requests", auth, doctorOnly, consultationHandler.GetDoctorConsultationRequests)
	router.GET("/doctors/:doctor_id/bookings", auth, doctorOnly, consultationHandler.GetDoctorBookings)
	router.PUT("/consultation_requests/:request_id/respond", auth, doctorOnly, consultationHandler.RespondToConsultationRequest)
	router.PUT("/consultation_requests/:request_id/session", auth, doctorOnly, consultationHandler.ConfirmConsultationSession)
	router.POST("/doctors/:doctor_id/schedule_slots", auth, doctorOnly, scheduleHandler.CreateScheduleSlot)
	router.GET("/doctors/:doctor_id/schedule_slots", auth, doctorOnly, scheduleHandler.GetDoctorSlots)
	router.PUT("/schedule_slots/:slot_id/complete", auth, doctorOnly, scheduleHandler.CompleteScheduleSlot)
	router.DELETE("/schedule_slots/:slot_id", auth, doctorOnly, scheduleHandler.DeleteScheduleSlot)
	router.POST("/prescriptions", auth, doctorOnly, prescriptionHandler.IssuePrescription)

	// Patient-side routes: any authenticated role
	router.POST("/patients", auth, patientHandler.CreatePatient)
	router.GET("/patients/:patient_id", auth, patientHandler.GetPatientByID)
	router.GET("/patients/by_user/:user_id", auth, patientHandler.GetPatientByUserID)
	router.PUT("/patients/:patient_id", auth, patientHandler.UpdatePatient)
	router.POST("/consultation_requests", auth, consultationHandler.CreateConsultationRequest)
	router.GET("/consultation_requests/:request_id", auth, consultationHandler.GetConsultationRequest)
	router.GET("/patients/:patient_id/consultation_requests", auth, consultationHandler.GetPatientConsultationRequests)
	router.PUT("/schedule_slots/:slot_id/book", auth, scheduleHandler.BookScheduleSlot)
	router.GET("/patients/:patient_id/prescriptions", auth, prescriptionHandler.GetPatientPrescriptions)
	router.PUT("/prescriptions/:prescription_id/slot", auth, prescriptionHandler.ConfirmPrescriptionSlot)
	router.POST("/appointments", auth, appointmentHandler.CreateAppointment)
	router.GET("/patients/:patient_id/appointments", auth, appointmentHandler.GetPatientAppointments)
	router.PUT("/appointments/:appointment_id/status", auth, appointmentHandler.UpdateAppointmentStatus)
	router.DELETE("/appointments/:appointment_id", auth, appointmentHandler.DeleteAppointment)
}
