package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bookmycare/clinic-scheduler/internal/domain/appointment"
	"github.com/bookmycare/clinic-scheduler/internal/dto"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

type ClinicGormRepository struct {
	db *gorm.DB
}

func NewClinicGormRepository(db *gorm.DB) *ClinicGormRepository {
	return &ClinicGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *ClinicGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ClinicGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// BookSlot runs the conflict check and the insert inside one transaction,
// locking the rows that hold the slot. The partial unique index on
// (doctor_id, date, time) WHERE status <> 'cancelled' backstops the check
// against writers outside this code path.
func (r *ClinicGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND date = ? AND time = ? AND status <> 'cancelled'",
				ap.DoctorID, ap.Date, ap.Time,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *ClinicGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ClinicGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Enriched listings
// --------------------------------------------------

// derivedPaymentStatus is the display-only payment rollup: the status of the
// first payment row recorded for the appointment.
const derivedPaymentStatus = `(SELECT p.status FROM payments p WHERE p.appointment_id = a.id ORDER BY p.id LIMIT 1) AS payment_status`

func (r *ClinicGormRepository) ListForPatient(
	ctx context.Context,
	patientUserID uint,
) ([]dto.AppointmentRow, error) {

	var rows []dto.AppointmentRow
	err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`a.id, a.patient_id, a.doctor_id, a.date, a.time, a.status, a.notes, a.created_at,
			u.name AS doctor_name, d.specialization, d.consultation_fee, `+derivedPaymentStatus).
		Joins("JOIN doctors d ON a.doctor_id = d.id").
		Joins("JOIN users u ON d.user_id = u.id").
		Where("a.patient_id = ?", patientUserID).
		Order("a.date DESC, a.time DESC").
		Scan(&rows).Error

	return rows, err
}

func (r *ClinicGormRepository) ListForDoctor(
	ctx context.Context,
	doctorUserID uint,
) ([]dto.AppointmentRow, error) {

	var rows []dto.AppointmentRow
	err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`a.id, a.patient_id, a.doctor_id, a.date, a.time, a.status, a.notes, a.created_at,
			u.name AS patient_name, `+derivedPaymentStatus).
		Joins("JOIN doctors d ON a.doctor_id = d.id").
		Joins("JOIN users u ON a.patient_id = u.id").
		Where("d.user_id = ?", doctorUserID).
		Order("a.date DESC, a.time DESC").
		Scan(&rows).Error

	return rows, err
}

func (r *ClinicGormRepository) ListAll(
	ctx context.Context,
) ([]dto.AppointmentRow, error) {

	var rows []dto.AppointmentRow
	err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`a.id, a.patient_id, a.doctor_id, a.date, a.time, a.status, a.notes, a.created_at,
			u_p.name AS patient_name, u_d.name AS doctor_name, `+derivedPaymentStatus).
		Joins("JOIN users u_p ON a.patient_id = u_p.id").
		Joins("JOIN doctors d ON a.doctor_id = d.id").
		Joins("JOIN users u_d ON d.user_id = u_d.id").
		Order("a.date DESC, a.time DESC").
		Scan(&rows).Error

	return rows, err
}

// Compile-time check
var _ domain.Repository = (*ClinicGormRepository)(nil)
