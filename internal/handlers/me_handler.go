package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/middleware"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the authenticated user plus its role profile, when one
// exists.
func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "user not in context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid user id type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "user not found"})
		return
	}

	body := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	}

	switch user.Role {
	case "doctor":
		var doc models.Doctor
		if err := h.db.Where("user_id = ?", user.ID).First(&doc).Error; err == nil {
			body["doctor"] = doc
		}
	case "patient":
		var patient models.Patient
		if err := h.db.Where("user_id = ?", user.ID).First(&patient).Error; err == nil {
			body["patient"] = patient
		}
	}

	c.JSON(http.StatusOK, body)
}
