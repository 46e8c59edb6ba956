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

type UpdateStatusInput struct {
	AppointmentID uint
	Status        string
	Notes         string
}

type UpdateStatus struct {
	repo  domain.Repository
	audit Auditor
}

func NewUpdateStatus(
	repo domain.Repository,
	audit Auditor,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	from := domain.Status(ap.Status)
	to := domain.Status(in.Status)

	if err := domain.CanTransition(from, to); err != nil {
		return nil, err
	}

	ap.Status = string(to)
	ap.Notes = in.Notes

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": string(from),
			"to":   string(to),
		},
	})

	return ap, nil
}
