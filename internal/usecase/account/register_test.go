package account

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bookmycare/clinic-scheduler/internal/credentials"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
)

func registerFixture() (*fakeRepo, *recordingAuditor, *Register) {
	repo := newFakeRepo()
	auditor := &recordingAuditor{}
	return repo, auditor, NewRegister(repo, credentials.Plaintext{}, auditor, 500)
}

func TestRegisterPatient(t *testing.T) {
	repo, auditor, uc := registerFixture()

	user, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    " John@Example.com ",
		Password: "secret",
		Role:     "patient",
		Age:      34,
		Gender:   "male",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if user.ID == 0 {
		t.Error("registered user has no id")
	}
	if user.Email != "john@example.com" {
		t.Errorf("email = %q, want normalized john@example.com", user.Email)
	}
	if user.Role != "patient" {
		t.Errorf("role = %q, want patient", user.Role)
	}

	stored, ok := repo.users["john@example.com"]
	if !ok || len(repo.users) != 1 {
		t.Fatalf("stored users = %d, want exactly one under the normalized email", len(repo.users))
	}
	profile, ok := repo.patients[stored.ID]
	if !ok {
		t.Fatal("no patient profile stored for the new user")
	}
	if profile.Age != 34 || profile.Gender != "male" {
		t.Errorf("profile = %d/%q, want 34/male", profile.Age, profile.Gender)
	}

	if len(auditor.events) != 1 || auditor.events[0] != "user_registered" {
		t.Errorf("audit events = %v, want [user_registered]", auditor.events)
	}
}

func TestRegisterDoctorDefaultFee(t *testing.T) {
	repo, _, uc := registerFixture()

	user, err := uc.Execute(context.Background(), RegisterInput{
		Name:           "Sarah Johnson",
		Email:          "sarah@doc.com",
		Password:       "doc123",
		Role:           "doctor",
		Specialization: "Cardiologist",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	profile, ok := repo.doctors[user.ID]
	if !ok {
		t.Fatal("no doctor profile stored for the new user")
	}
	if profile.Specialization != "Cardiologist" {
		t.Errorf("specialization = %q, want Cardiologist", profile.Specialization)
	}
	if profile.ConsultationFee != 500 {
		t.Errorf("consultation fee = %v, want the 500 default", profile.ConsultationFee)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, auditor, uc := registerFixture()

	in := RegisterInput{Name: "John Doe", Email: "john@example.com", Password: "secret", Role: "patient"}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	// Same address again, even with a different case.
	in.Name = "Jane Roe"
	in.Email = "John@Example.com"
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "email_already_exists") {
		t.Fatalf("second registration = %v, want email_already_exists", err)
	}

	if len(repo.users) != 1 {
		t.Errorf("stored users = %d, want the first registration only", len(repo.users))
	}
	if repo.users["john@example.com"].Name != "John Doe" {
		t.Error("second registration overwrote the first account")
	}
	if len(auditor.events) != 1 {
		t.Errorf("audit events = %v, want the first user_registered only", auditor.events)
	}
}

func TestRegisterConcurrentDuplicate(t *testing.T) {
	// The pre-check missed the other writer; the unique-index violation
	// from the insert still reads as a duplicate, not a server fault.
	repo, _, uc := registerFixture()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}

	_, err := uc.Execute(context.Background(), RegisterInput{
		Name: "John Doe", Email: "john@example.com", Password: "secret", Role: "patient",
	})
	if !httperr.IsBusiness(err, "email_already_exists") {
		t.Fatalf("Execute = %v, want email_already_exists", err)
	}
}

func TestRegisterStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")

	repo, auditor, uc := registerFixture()
	repo.lookupErr = storeErr

	in := RegisterInput{Name: "John Doe", Email: "john@example.com", Password: "secret", Role: "patient"}

	// A failed existence check must not read as "email free".
	_, err := uc.Execute(context.Background(), in)
	if !errors.Is(err, storeErr) {
		t.Fatalf("Execute = %v, want the store error", err)
	}
	if code, ok := httperr.BusinessCode(err); ok {
		t.Fatalf("store failure surfaced as business code %q", code)
	}
	if len(repo.users) != 0 {
		t.Errorf("stored users = %d, want none", len(repo.users))
	}

	repo.lookupErr = nil
	repo.createErr = storeErr
	_, err = uc.Execute(context.Background(), in)
	if !errors.Is(err, storeErr) {
		t.Fatalf("Execute = %v, want the store error", err)
	}

	if len(auditor.events) != 0 {
		t.Errorf("audit events = %v, want none", auditor.events)
	}
}

func TestRegisterValidation(t *testing.T) {
	repo, _, uc := registerFixture()

	cases := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{"unknown role", RegisterInput{Name: "X", Email: "x@example.com", Password: "p", Role: "nurse"}, "invalid_role"},
		{"bad email", RegisterInput{Name: "X", Email: "not-an-email", Password: "p", Role: "patient"}, "invalid_email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Execute(context.Background(), tc.in); !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("Execute = %v, want business code %q", err, tc.code)
			}
		})
	}

	if len(repo.users) != 0 {
		t.Errorf("stored users = %d, want none after rejected registrations", len(repo.users))
	}
}
