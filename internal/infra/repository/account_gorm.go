package repository

import (
	"context"

	"gorm.io/gorm"

	domainAccount "github.com/bookmycare/clinic-scheduler/internal/domain/account"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AccountGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) EmailTaken(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error

	return count > 0, err
}

// --------------------------------------------------
// Registration
// --------------------------------------------------

// CreateAccount lands the user and its role profile together or not at all.
func (r *AccountGormRepository) CreateAccount(
	ctx context.Context,
	acc *domainAccount.NewAccount,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(&acc.User).Error; err != nil {
			return err
		}

		switch {
		case acc.Patient != nil:
			acc.Patient.UserID = acc.User.ID
			return tx.Create(acc.Patient).Error
		case acc.Doctor != nil:
			acc.Doctor.UserID = acc.User.ID
			return tx.Create(acc.Doctor).Error
		}

		return nil
	})
}

// Compile-time check
var _ domainAccount.Repository = (*AccountGormRepository)(nil)
