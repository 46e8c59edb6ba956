package account

import (
	"context"
	"strings"

	"github.com/bookmycare/clinic-scheduler/internal/audit"
	"github.com/bookmycare/clinic-scheduler/internal/credentials"
	domain "github.com/bookmycare/clinic-scheduler/internal/domain/account"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/models"
	"github.com/bookmycare/clinic-scheduler/internal/validators"
)

// Auditor is what use cases need from the audit pipeline.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string

	// role=patient
	Age    int
	Gender string

	// role=doctor
	Specialization string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo       domain.Repository
	verifier   credentials.Verifier
	audit      Auditor
	defaultFee float64
}

func NewRegister(
	repo domain.Repository,
	verifier credentials.Verifier,
	audit Auditor,
	defaultFee float64,
) *Register {
	return &Register{
		repo:       repo,
		verifier:   verifier,
		audit:      audit,
		defaultFee: defaultFee,
	}
}

func isValidRole(role string) bool {
	switch role {
	case "admin", "doctor", "patient":
		return true
	}
	return false
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	if !isValidRole(in.Role) {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	taken, err := uc.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("email_already_exists")
	}

	stored, err := uc.verifier.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	acc := &domain.NewAccount{
		User: models.User{
			Name:     in.Name,
			Email:    email,
			Phone:    in.Phone,
			Password: stored,
			Role:     in.Role,
		},
	}

	switch in.Role {
	case "patient":
		acc.Patient = &models.Patient{
			Age:    in.Age,
			Gender: in.Gender,
		}
	case "doctor":
		acc.Doctor = &models.Doctor{
			Specialization:  in.Specialization,
			ConsultationFee: uc.defaultFee,
		}
	}

	if err := uc.repo.CreateAccount(ctx, acc); err != nil {
		// Lost the race against a concurrent registration holding the
		// same address; the unique index on users.email caught it.
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("email_already_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &acc.User.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &acc.User.ID,
		Metadata: map[string]any{"role": acc.User.Role},
	})

	return &acc.User, nil
}
