package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookmycare/clinic-scheduler/internal/dto"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/bookmycare/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC   *ucAppointment.BookAppointment
	listUC   *ucAppointment.ListAppointments
	statusUC *ucAppointment.UpdateStatus
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	listUC *ucAppointment.ListAppointments,
	statusUC *ucAppointment.UpdateStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:   bookUC,
		listUC:   listUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	DoctorID  uint   `json:"doctor_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.BadRequest(c, "slot_taken", "This slot is already booked.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		case httperr.IsBusiness(err, "missing_doctor"),
			httperr.IsBusiness(err, "doctor_not_found"):
			httperr.BadRequest(c, "doctor_not_found", "Doctor not found.")
		case httperr.IsBusiness(err, "patient_not_found"):
			httperr.BadRequest(c, "patient_not_found", "Patient not found.")
		default:
			httperr.Internal(c, "failed_to_book", "Could not book the appointment.")
		}
		return
	}

	httpresp.Success(c, gin.H{"appointmentId": ap.ID})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
		return
	}

	role := c.Query("role")

	rows, err := h.listUC.Execute(c.Request.Context(), uint(userID), role)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	if rows == nil {
		rows = []dto.AppointmentRow{}
	}

	httpresp.OK(c, rows)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	_, err = h.statusUC.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: uint(id),
		Status:        req.Status,
		Notes:         req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
		case httperr.IsBusiness(err, "invalid_transition"):
			httperr.BadRequest(c, "invalid_transition", "This status change is not allowed.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Could not update the appointment.")
		}
		return
	}

	httpresp.Success(c, gin.H{})
}
