package appointment

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/audit"
	domain "github.com/bookmycare/clinic-scheduler/internal/domain/appointment"
	"github.com/bookmycare/clinic-scheduler/internal/dto"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository mirroring the store invariants the
// gorm implementation enforces: one non-cancelled appointment per slot, and
// the derived payment status taken from the first payment per appointment.
type fakeRepo struct {
	users   map[uint]*models.User
	doctors map[uint]*models.Doctor

	apps   []*models.Appointment
	nextID uint

	// appointment id → ordered payment statuses
	payments map[uint][]string

	// injected store failures
	doctorLookupErr      error
	userLookupErr        error
	appointmentLookupErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[uint]*models.User{},
		doctors:  map[uint]*models.Doctor{},
		payments: map[uint][]string{},
	}
}

func (f *fakeRepo) addUser(id uint, name, role string) {
	f.users[id] = &models.User{ID: id, Name: name, Role: role}
}

func (f *fakeRepo) addDoctor(id, userID uint, specialization string, fee float64) {
	f.doctors[id] = &models.Doctor{
		ID:              id,
		UserID:          userID,
		Specialization:  specialization,
		ConsultationFee: fee,
	}
}

func (f *fakeRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	if f.doctorLookupErr != nil {
		return nil, f.doctorLookupErr
	}
	if d, ok := f.doctors[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if f.userLookupErr != nil {
		return nil, f.userLookupErr
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) BookSlot(_ context.Context, ap *models.Appointment) error {
	for _, existing := range f.apps {
		if existing.DoctorID == ap.DoctorID &&
			existing.Date == ap.Date &&
			existing.Time == ap.Time &&
			existing.Status != "cancelled" {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	f.nextID++
	ap.ID = f.nextID
	f.apps = append(f.apps, ap)
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if f.appointmentLookupErr != nil {
		return nil, f.appointmentLookupErr
	}
	for _, ap := range f.apps {
		if ap.ID == id {
			copied := *ap
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for _, stored := range f.apps {
		if stored.ID == ap.ID {
			*stored = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) recordPayment(appointmentID uint, status string) {
	f.payments[appointmentID] = append(f.payments[appointmentID], status)
}

func (f *fakeRepo) paymentStatus(appointmentID uint) *string {
	if statuses, ok := f.payments[appointmentID]; ok && len(statuses) > 0 {
		first := statuses[0]
		return &first
	}
	return nil
}

func (f *fakeRepo) row(ap *models.Appointment) dto.AppointmentRow {
	return dto.AppointmentRow{
		ID:            ap.ID,
		PatientID:     ap.PatientID,
		DoctorID:      ap.DoctorID,
		Date:          ap.Date,
		Time:          ap.Time,
		Status:        ap.Status,
		Notes:         ap.Notes,
		PaymentStatus: f.paymentStatus(ap.ID),
	}
}

func sortRows(rows []dto.AppointmentRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].Time > rows[j].Time
	})
}

func (f *fakeRepo) ListForPatient(_ context.Context, patientUserID uint) ([]dto.AppointmentRow, error) {
	var rows []dto.AppointmentRow
	for _, ap := range f.apps {
		if ap.PatientID != patientUserID {
			continue
		}
		row := f.row(ap)
		if doc, ok := f.doctors[ap.DoctorID]; ok {
			row.Specialization = doc.Specialization
			row.ConsultationFee = doc.ConsultationFee
			if owner, ok := f.users[doc.UserID]; ok {
				row.DoctorName = owner.Name
			}
		}
		rows = append(rows, row)
	}
	sortRows(rows)
	return rows, nil
}

func (f *fakeRepo) ListForDoctor(_ context.Context, doctorUserID uint) ([]dto.AppointmentRow, error) {
	var rows []dto.AppointmentRow
	for _, ap := range f.apps {
		doc, ok := f.doctors[ap.DoctorID]
		if !ok || doc.UserID != doctorUserID {
			continue
		}
		row := f.row(ap)
		if patient, ok := f.users[ap.PatientID]; ok {
			row.PatientName = patient.Name
		}
		rows = append(rows, row)
	}
	sortRows(rows)
	return rows, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]dto.AppointmentRow, error) {
	var rows []dto.AppointmentRow
	for _, ap := range f.apps {
		row := f.row(ap)
		if patient, ok := f.users[ap.PatientID]; ok {
			row.PatientName = patient.Name
		}
		if doc, ok := f.doctors[ap.DoctorID]; ok {
			if owner, ok := f.users[doc.UserID]; ok {
				row.DoctorName = owner.Name
			}
		}
		rows = append(rows, row)
	}
	sortRows(rows)
	return rows, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// recordingAuditor collects dispatched events.
type recordingAuditor struct {
	events []string
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev.Action)
}
