package models

import (
	"time"

	"gorm.io/gorm"
)

// Doctor model. Profiles are created by the registration flow of the
// external identity service; patients only ever read them.
type Doctor struct {
	ID              string                `gorm:"primaryKey;column:id" json:"id"`
	UserID          string                `gorm:"column:user_id;index" json:"user_id"`
	FullName        string                `gorm:"column:full_name;not null;index" json:"full_name"`
	Email           string                `gorm:"column:email;not null" json:"email"`
	Phone           string                `gorm:"column:phone" json:"phone"`
	Specialization  string                `gorm:"column:specialization;not null;index" json:"specialization"`
	LicenseNumber   string                `gorm:"column:license_number;not null" json:"license_number"`
	ExperienceYears int                   `gorm:"column:experience_years;check:experience_years >= 0;not null" json:"experience_years"`
	Bio             string                `gorm:"column:bio" json:"bio"`
	Available       bool                  `gorm:"column:available;not null" json:"available"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ScheduleSlots   []ScheduleSlot        `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Requests        []ConsultationRequest `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Prescriptions   []Prescription        `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// ScheduleSlot model. A doctor-declared block of available time, kept in
// the doctor_schedule table. Dates and times are stored the way the
// calendar UI sends them: YYYY-MM-DD and HH:MM strings.
type ScheduleSlot struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	DoctorID  string    `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Date      string    `gorm:"column:date;not null;index" json:"date"`
	StartTime string    `gorm:"column:start_time;not null" json:"start_time"`
	EndTime   string    `gorm:"column:end_time;not null" json:"end_time"`
	Status    string    `gorm:"column:status;check:status IN ('available', 'booked', 'completed');not null;default:'available'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Doctor    Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (ScheduleSlot) TableName() string {
	return "doctor_schedule"
}

// Specialization model holds the coarse symptom categories offered by the
// symptoms form.
type Specialization struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"size:100;not null;unique;index;column:name" json:"name"`
}

func (Specialization) TableName() string {
	return "specializations"
}

// SeedSpecializations inserts the initial specialization categories into the database
func SeedSpecializations(db *gorm.DB) error {
	initialSpecializations := []Specialization{
		{Name: "General Medicine"},
		{Name: "Cardiology"},
		{Name: "Orthopedics"},
		{Name: "Dermatology"},
		{Name: "Neurology"},
		{Name: "Gastroenterology"},
		{Name: "Pediatrics"},
		{Name: "Psychiatry"},
		{Name: "ENT"},
		{Name: "Ophthalmology"},
		{Name: "Urology"},
		{Name: "Gynecology"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, specialization := range initialSpecializations {
			if err := tx.FirstOrCreate(&specialization, Specialization{Name: specialization.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
