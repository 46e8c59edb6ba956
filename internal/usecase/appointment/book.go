package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/audit"
	domain "github.com/bookmycare/clinic-scheduler/internal/domain/appointment"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

// Auditor is what use cases need from the audit pipeline.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID uint
	DoctorID  uint
	Date      string
	Time      string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewBookAppointment(
	repo domain.Repository,
	audit Auditor,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	slot := domain.Slot{
		DoctorID: in.DoctorID,
		Date:     in.Date,
		Time:     in.Time,
	}
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetDoctorByID(ctx, in.DoctorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("doctor_not_found")
		}
		return nil, err
	}

	if _, err := uc.repo.GetUserByID(ctx, in.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("patient_not_found")
		}
		return nil, err
	}

	ap := &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.BookSlot(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.PatientID,
				Action: "booking_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"doctor_id": in.DoctorID,
					"date":      in.Date,
					"time":      in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.PatientID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
