// Package hasher hashes and verifies user passwords.
package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest bcrypt cost accepted for stored passwords.
const MinCost = bcrypt.DefaultCost

// ErrMismatch is returned when a password does not match its hash.
var ErrMismatch = errors.New("password does not match")

// Bcrypt hashes passwords with a per-password salt.
type Bcrypt struct {
	cost      int
	dummyHash []byte
}

// NewBcrypt creates a Bcrypt hasher. Costs below MinCost are raised to MinCost.
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < MinCost {
		cost = MinCost
	}
	if cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d exceeds maximum %d", cost, bcrypt.MaxCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("lifeos-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &Bcrypt{cost: cost, dummyHash: dummy}, nil
}

// Hash returns the bcrypt hash of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks password against hash. It returns ErrMismatch on a wrong password.
func (b *Bcrypt) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}

// CompareDummy burns the same work as Compare for callers that have no hash
// to compare against, so unknown accounts take as long as wrong passwords.
func (b *Bcrypt) CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(b.dummyHash, []byte(password))
}
