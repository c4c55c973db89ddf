package routes

import (
	"TeleMed/cache"
	"TeleMed/config"
	"TeleMed/controllers"
	"TeleMed/handlers"
	"TeleMed/middlewares"
	"TeleMed/repositories"
	"TeleMed/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://telemed.example.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	doctorRepo := repositories.NewDoctorRepository(cache)
	patientRepo := repositories.NewPatientRepository(cache)
	consultationRepo := repositories.NewConsultationRequestRepository(cache)
	scheduleRepo := repositories.NewScheduleSlotRepository()
	prescriptionRepo := repositories.NewPrescriptionRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository()
	feedbackRepo := repositories.NewFeedbackRepository()

	notifier := services.NewEmailNotifier()

	doctorService := services.NewDoctorService(doctorRepo)
	patientService := services.NewPatientService(patientRepo)
	consultationService := services.NewConsultationService(consultationRepo, patientRepo, doctorRepo, notifier)
	bookingsService := services.NewBookingsService(consultationRepo, prescriptionRepo)
	scheduleService := services.NewScheduleService(scheduleRepo)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo, consultationRepo, scheduleRepo, doctorRepo, notifier)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)

	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientService)
	consultationHandler := handlers.NewConsultationHandler(consultationService, bookingsService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Register routes
	controllers.SetupTeleMedRoutes(
		router,
		doctorHandler,
		patientHandler,
		consultationHandler,
		scheduleHandler,
		prescriptionHandler,
		appointmentHandler,
		feedbackHandler,
	)

	controllers.SetupRootRoute(router)

	return router
}
