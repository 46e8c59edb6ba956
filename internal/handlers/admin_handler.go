package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/cache"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

type AdminHandler struct {
	db    *gorm.DB
	stats *cache.StatsCache
}

func NewAdminHandler(db *gorm.DB, stats *cache.StatsCache) *AdminHandler {
	return &AdminHandler{db: db, stats: stats}
}

type statsResponse struct {
	TotalPatients     int64   `json:"totalPatients"`
	TotalDoctors      int64   `json:"totalDoctors"`
	TotalAppointments int64   `json:"totalAppointments"`
	Revenue           float64 `json:"revenue"`
}

// Stats is the read-only dashboard rollup: role counts, appointment count
// and the revenue across completed payments.
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	if payload, ok := h.stats.Get(ctx); ok {
		c.Data(200, "application/json; charset=utf-8", payload)
		return
	}

	var out statsResponse

	if err := h.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", "patient").
		Count(&out.TotalPatients).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}

	if err := h.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", "doctor").
		Count(&out.TotalDoctors).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}

	if err := h.db.WithContext(ctx).Model(&models.Appointment{}).
		Count(&out.TotalAppointments).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}

	if err := h.db.WithContext(ctx).Model(&models.Payment{}).
		Where("status = ?", "completed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&out.Revenue).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}

	payload, err := json.Marshal(out)
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}

	h.stats.Set(ctx, payload)
	c.Data(200, "application/json; charset=utf-8", payload)
}
