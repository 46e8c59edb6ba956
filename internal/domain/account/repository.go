package account

import (
	"context"

	"github.com/bookmycare/clinic-scheduler/internal/models"
)

// NewAccount is a user together with the role profile created alongside it.
// At most one profile is set, matching User.Role.
type NewAccount struct {
	User    models.User
	Patient *models.Patient
	Doctor  *models.Doctor
}

type Repository interface {
	// -------- Lookups --------
	// GetUserByEmail fails with gorm.ErrRecordNotFound when no account
	// holds the address; any other error is a store failure.
	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	EmailTaken(
		ctx context.Context,
		email string,
	) (bool, error)

	// -------- Registration --------
	// CreateAccount persists the user and its profile atomically, filling
	// in the generated ids.
	CreateAccount(
		ctx context.Context,
		acc *NewAccount,
	) error
}
