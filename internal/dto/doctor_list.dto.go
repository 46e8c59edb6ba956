package dto

import "gorm.io/datatypes"

// DoctorRow is the doctor profile joined with its owning user, as served by
// the public doctor listing.
type DoctorRow struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"user_id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Specialization  string         `json:"specialization"`
	Bio             string         `json:"bio"`
	Experience      int            `json:"experience"`
	ConsultationFee float64        `json:"consultation_fee"`
	Availability    datatypes.JSON `json:"availability"`
}
