package models

import (
	"time"
)

// Patient model. A profile is created lazily the first time a user sends a
// consultation request without one.
type Patient struct {
	ID               string                `gorm:"primaryKey;column:id" json:"id"`
	UserID           string                `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	FullName         string                `gorm:"column:full_name;not null" json:"full_name"`
	Email            string                `gorm:"column:email" json:"email"`
	Phone            string                `gorm:"column:phone" json:"phone"`
	EmergencyContact string                `gorm:"column:emergency_contact" json:"emergency_contact"`
	CreatedAt        time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Requests         []ConsultationRequest `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Prescriptions    []Prescription        `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Appointments     []Appointment         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// ConsultationRequest model. Links one patient to one doctor; the status
// column carries the consultation lifecycle.
type ConsultationRequest struct {
	ID               string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID        string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID         string    `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Symptoms         string    `gorm:"column:symptoms;not null" json:"symptoms"`
	ConsultationType string    `gorm:"column:consultation_type;check:consultation_type IN ('video', 'chat');not null" json:"consultation_type"`
	RequestMessage   string    `gorm:"column:request_message" json:"request_message"`
	Status           string    `gorm:"column:status;check:status IN ('pending', 'accepted', 'rejected', 'confirmed', 'rescheduled', 'completed');not null;default:'pending'" json:"status"`
	DoctorResponse   string    `gorm:"column:doctor_response" json:"doctor_response"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient          Patient   `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
	Doctor           Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (ConsultationRequest) TableName() string {
	return "consultation_requests"
}

// Prescription model. Produced by a doctor from exactly one consultation
// request. The selected consultation date/time are copied from a schedule
// slot at issue time and are not kept in sync with that slot afterwards.
type Prescription struct {
	ID                       string              `gorm:"primaryKey;column:id" json:"id"`
	DoctorID                 string              `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	PatientID                string              `gorm:"column:patient_id;not null;index" json:"patient_id"`
	ConsultationRequestID    string              `gorm:"column:consultation_request_id;not null;index" json:"consultation_request_id"`
	Medications              string              `gorm:"column:medications;not null" json:"medications"`
	DosageInstructions       string              `gorm:"column:dosage_instructions;not null" json:"dosage_instructions"`
	Notes                    string              `gorm:"column:notes" json:"notes"`
	HealthTips               string              `gorm:"column:health_tips" json:"health_tips"`
	FollowUpDate             string              `gorm:"column:follow_up_date" json:"follow_up_date"`
	SelectedConsultationDate string              `gorm:"column:selected_consultation_date" json:"selected_consultation_date"`
	SelectedConsultationTime string              `gorm:"column:selected_consultation_time" json:"selected_consultation_time"`
	ConsultationStatus       string              `gorm:"column:consultation_status;check:consultation_status IN ('pending', 'confirmed', 'declined');not null;default:'pending'" json:"consultation_status"`
	CreatedAt                time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Doctor                   Doctor              `gorm:"foreignKey:DoctorID;references:ID" json:"doctor"`
	Patient                  Patient             `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	ConsultationRequest      ConsultationRequest `gorm:"foreignKey:ConsultationRequestID;references:ID" json:"consultation_request"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// DirectBookingRequestID is stored in consultation_request_id when an
// appointment is booked without a prior consultation request.
const DirectBookingRequestID = "direct"

// Appointment model. An independently bookable patient/doctor pairing,
// disconnected from the consultation request flow in the direct path.
type Appointment struct {
	ID                    string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID             string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID              string    `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	ConsultationRequestID string    `gorm:"column:consultation_request_id;not null;default:'direct'" json:"consultation_request_id"`
	DateTime              string    `gorm:"column:date_time;not null;index" json:"date_time"`
	ConsultationType      string    `gorm:"column:consultation_type;check:consultation_type IN ('video', 'chat');not null" json:"consultation_type"`
	Status                string    `gorm:"column:status;check:status IN ('scheduled', 'fulfilled', 'cancelled');not null;default:'scheduled'" json:"status"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient               Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Feedback model
type Feedback struct {
	ID             string    `gorm:"primaryKey;column:id" json:"id"`
	FullName       string    `gorm:"column:full_name;not null" json:"full_name"`
	Email          string    `gorm:"column:email;not null" json:"email"`
	UserType       string    `gorm:"column:user_type;check:user_type IN ('patient', 'doctor', 'family', 'other')" json:"user_type"`
	Category       string    `gorm:"column:category;not null" json:"category"`
	Rating         int       `gorm:"column:rating;check:rating BETWEEN 1 AND 5;not null" json:"rating"`
	Title          string    `gorm:"column:title" json:"title"`
	Message        string    `gorm:"column:message;not null" json:"message"`
	Improvements   string    `gorm:"column:improvements" json:"improvements"`
	Recommendation string    `gorm:"column:recommendation" json:"recommendation"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
