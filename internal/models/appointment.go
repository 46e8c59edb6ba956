package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// The patient side references the users table directly; the doctor side
	// references the doctors profile row.
	PatientID uint `gorm:"not null" json:"patient_id"`
	Patient   User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DoctorID uint   `gorm:"not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;not null;default:'pending';check:status IN ('pending','approved','rejected','completed','cancelled')" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
