package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/audit"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/httpresp"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

type PaymentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPaymentHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{db: db, audit: dispatcher}
}

type RecordPaymentRequest struct {
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

// newTransactionID builds the settlement reference: TXN plus a short random
// token. Uniqueness is still enforced by the store.
func newTransactionID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TXN" + raw[:9]
}

// Create records an already-settled payment for an appointment. No gateway
// is involved; payments are simulated.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var appointment models.Appointment
	if err := h.db.WithContext(c.Request.Context()).
		First(&appointment, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	payment := models.Payment{
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Status:        "completed",
		TransactionID: newTransactionID(),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&payment).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Internal(c, "duplicate_transaction_id", "Transaction id collision, retry the payment.")
			return
		}
		httperr.Internal(c, "failed_to_record_payment", "Could not record the payment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: &payment.ID,
		Metadata: map[string]any{
			"appointment_id": payment.AppointmentID,
			"amount":         payment.Amount,
		},
	})

	httpresp.Success(c, gin.H{"transaction_id": payment.TransactionID})
}
