package appointment

import (
	"context"

	domain "github.com/bookmycare/clinic-scheduler/internal/domain/appointment"
	"github.com/bookmycare/clinic-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute scopes the listing by the viewer's role: patients see their own
// bookings, doctors see the bookings held against their profile, anyone
// else (admin) sees everything.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	viewerID uint,
	role string,
) ([]dto.AppointmentRow, error) {

	switch role {
	case "patient":
		return uc.repo.ListForPatient(ctx, viewerID)
	case "doctor":
		return uc.repo.ListForDoctor(ctx, viewerID)
	default:
		return uc.repo.ListAll(ctx)
	}
}
