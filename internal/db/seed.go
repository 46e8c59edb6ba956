package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/config"
	"github.com/bookmycare/clinic-scheduler/internal/credentials"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

const adminEmail = "admin@bookmycare.com"

type demoDoctor struct {
	Name           string
	Email          string
	Specialization string
	Fee            float64
}

var demoDoctors = []demoDoctor{
	{Name: "Sarah Johnson", Email: "sarah@doc.com", Specialization: "Cardiologist", Fee: 800},
	{Name: "Michael Chen", Email: "michael@doc.com", Specialization: "Dermatologist", Fee: 600},
	{Name: "Emily Davis", Email: "emily@doc.com", Specialization: "Pediatrician", Fee: 500},
}

// Seed inserts the fixed administrator and demonstration doctors on first
// startup. Idempotent: the admin email decides whether seeding already ran.
func Seed(db *gorm.DB, cfg *config.Config, verifier credentials.Verifier) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", adminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("seeding initial data...")

	return db.Transaction(func(tx *gorm.DB) error {

		adminPass, err := verifier.Hash("admin123")
		if err != nil {
			return err
		}

		admin := models.User{
			Name:     "System Admin",
			Email:    adminEmail,
			Password: adminPass,
			Role:     "admin",
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		docPass, err := verifier.Hash("doc123")
		if err != nil {
			return err
		}

		for _, d := range demoDoctors {
			user := models.User{
				Name:     d.Name,
				Email:    d.Email,
				Password: docPass,
				Role:     "doctor",
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			fee := d.Fee
			if fee <= 0 {
				fee = cfg.DefaultConsultationFee
			}

			doc := models.Doctor{
				UserID:          user.ID,
				Specialization:  d.Specialization,
				ConsultationFee: fee,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
