package models

import (
	"time"

	"gorm.io/datatypes"
)

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Specialization  string  `gorm:"size:100;not null" json:"specialization"`
	Bio             string  `gorm:"size:500" json:"bio"`
	Experience      int     `json:"experience"`
	ConsultationFee float64 `gorm:"default:500" json:"consultation_fee"`

	// Published booking windows. Opaque to the booking engine: conflicts are
	// decided on committed appointment rows only.
	Availability datatypes.JSON `json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
