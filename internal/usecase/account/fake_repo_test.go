package account

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/audit"
	domain "github.com/bookmycare/clinic-scheduler/internal/domain/account"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository. Like the transactional gorm
// implementation, an account lands fully or not at all, and a second
// insert for a held email fails the way the unique index would.
type fakeRepo struct {
	users    map[string]*models.User
	patients map[uint]*models.Patient
	doctors  map[uint]*models.Doctor
	nextID   uint

	// injected store failures
	lookupErr error
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[string]*models.User{},
		patients: map[uint]*models.Patient{},
		doctors:  map[uint]*models.Doctor{},
	}
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if u, ok := f.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeRepo) CreateAccount(_ context.Context, acc *domain.NewAccount) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[acc.User.Email]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	}

	f.nextID++
	acc.User.ID = f.nextID
	stored := acc.User
	f.users[acc.User.Email] = &stored

	switch {
	case acc.Patient != nil:
		acc.Patient.UserID = acc.User.ID
		p := *acc.Patient
		f.patients[acc.User.ID] = &p
	case acc.Doctor != nil:
		acc.Doctor.UserID = acc.User.ID
		d := *acc.Doctor
		f.doctors[acc.User.ID] = &d
	}

	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// recordingAuditor collects dispatched events.
type recordingAuditor struct {
	events []string
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev.Action)
}
