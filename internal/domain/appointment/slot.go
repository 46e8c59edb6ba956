package appointment

import (
	"time"

	"github.com/bookmycare/clinic-scheduler/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot is the bookable unit: one doctor at one date and time. Two
// non-cancelled appointments can never share a slot.
type Slot struct {
	DoctorID uint
	Date     string
	Time     string
}

// Validate normalizes nothing; it only rejects malformed date or time
// strings so the uniqueness index always compares canonical values.
func (s Slot) Validate() error {
	if s.DoctorID == 0 {
		return httperr.ErrBusiness("missing_doctor")
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse(TimeLayout, s.Time); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	return nil
}
