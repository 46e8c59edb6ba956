package account

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/credentials"
	domain "github.com/bookmycare/clinic-scheduler/internal/domain/account"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

type Authenticate struct {
	repo     domain.Repository
	verifier credentials.Verifier
}

func NewAuthenticate(
	repo domain.Repository,
	verifier credentials.Verifier,
) *Authenticate {
	return &Authenticate{
		repo:     repo,
		verifier: verifier,
	}
}

// Execute resolves the credentials to a user. Both failure modes map to the
// same invalid_credentials error, so the caller never says whether the
// account exists; the distinction is kept in the server log only.
func (uc *Authenticate) Execute(
	ctx context.Context,
	email, password string,
) (*models.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("login failed for %s: no such user", email)
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if !uc.verifier.Verify(user.Password, password) {
		log.Printf("login failed for %s: wrong password", email)
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return user, nil
}
