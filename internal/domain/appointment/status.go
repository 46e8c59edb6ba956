package appointment

import "github.com/bookmycare/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// transitions is the allowed state machine: a pending request is decided by
// the doctor, an approved one either happens or gets called off. Rejected,
// completed and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCompleted, StatusCancelled},
}

// CanTransition validates a status change against the transition table.
func CanTransition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	for _, allowed := range transitions[from] {
		if to == allowed {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
