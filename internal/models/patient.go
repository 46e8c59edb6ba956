package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Age        int    `json:"age"`
	Gender     string `gorm:"size:20" json:"gender"`
	BloodGroup string `gorm:"size:10" json:"blood_group"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
