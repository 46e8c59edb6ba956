package credentials

import "golang.org/x/crypto/bcrypt"

// Verifier abstracts how credentials are stored and compared, so the
// storage format can change without touching the auth handlers.
type Verifier interface {
	// Hash turns a plaintext password into its stored form.
	Hash(plain string) (string, error)
	// Verify compares a stored credential against a presented password.
	Verify(stored, presented string) bool
}

// Plaintext stores and compares passwords literally. It exists for
// compatibility with the legacy accounts; new deployments should prefer
// Bcrypt.
type Plaintext struct{}

func (Plaintext) Hash(plain string) (string, error) {
	return plain, nil
}

func (Plaintext) Verify(stored, presented string) bool {
	return stored == presented
}

// Bcrypt is the salted-hash verifier.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (b Bcrypt) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}
