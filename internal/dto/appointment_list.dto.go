package dto

import "time"

// AppointmentRow is one enriched appointment as returned by the listing
// endpoint. Which enrichment columns are populated depends on the viewer:
// patients see the doctor side, doctors see the patient side, admins both.
// PaymentStatus carries the status of the first payment recorded for the
// appointment, or null when none exists.
type AppointmentRow struct {
	ID        uint      `json:"id"`
	PatientID uint      `json:"patient_id"`
	DoctorID  uint      `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`

	DoctorName      string  `json:"doctor_name,omitempty"`
	Specialization  string  `json:"specialization,omitempty"`
	ConsultationFee float64 `json:"consultation_fee,omitempty"`
	PatientName     string  `json:"patient_name,omitempty"`

	PaymentStatus *string `json:"payment_status"`
}
