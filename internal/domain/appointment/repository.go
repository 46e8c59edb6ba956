package appointment

import (
	"context"

	"github.com/bookmycare/clinic-scheduler/internal/dto"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Lookups for booking validation --------
	// Lookups fail with gorm.ErrRecordNotFound when the row is missing;
	// any other error is a store failure.
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Booking (conflict check + insert) --------
	// BookSlot atomically rejects the insert when a non-cancelled
	// appointment already holds the same (doctor, date, time), failing
	// with the slot_taken business error.
	BookSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- State change --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Enriched listings --------
	ListForPatient(
		ctx context.Context,
		patientUserID uint,
	) ([]dto.AppointmentRow, error)

	ListForDoctor(
		ctx context.Context,
		doctorUserID uint,
	) ([]dto.AppointmentRow, error)

	ListAll(
		ctx context.Context,
	) ([]dto.AppointmentRow, error)
}
