package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/dto"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/httpresp"
)

type DoctorHandler struct {
	db *gorm.DB
}

func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{db: db}
}

// List returns every doctor profile joined with its owning user row.
func (h *DoctorHandler) List(c *gin.Context) {
	var rows []dto.DoctorRow

	err := h.db.WithContext(c.Request.Context()).
		Table("doctors AS d").
		Select(`d.id, d.user_id, d.specialization, d.bio, d.experience,
			d.consultation_fee, d.availability, u.name, u.email, u.phone`).
		Joins("JOIN users u ON d.user_id = u.id").
		Order("d.id ASC").
		Scan(&rows).Error

	if err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not load doctors.")
		return
	}

	if rows == nil {
		rows = []dto.DoctorRow{}
	}

	httpresp.OK(c, rows)
}
