package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Amount float64 `gorm:"not null" json:"amount"`
	Status string  `gorm:"size:20;not null;default:'pending';check:status IN ('pending','completed','failed')" json:"status"`

	TransactionID string `gorm:"size:50;uniqueIndex;not null" json:"transaction_id"`

	CreatedAt time.Time `json:"created_at"`
}
