package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher defines the interface for one-way password hashing.
type PasswordHasher interface {
	// Hash returns an opaque salted hash of the plaintext. Two calls
	// with the same input produce different output.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on match, or an error on mismatch or a
	// malformed stored hash. It never panics past the boundary.
	Compare(hashedPassword, password string) error

	// CompareDummy burns one comparison against a throwaway hash, so a
	// login miss costs the same as a real check. Always returns an error.
	CompareDummy() error
}

// PasswordManager bundles hashing and verification for flows that need
// both sides, like registration and login.
type PasswordManager interface {
	PasswordHasher
	PasswordVerifier
}

// BcryptHasher implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptHasher struct {
	cost int
}

var _ PasswordManager = (*BcryptHasher)(nil)

// NewBcryptHasher creates a BcryptHasher with the given cost. A cost
// outside bcrypt's supported range falls back to the default cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// dummyHash is a valid bcrypt hash of a random string. Login flows
// compare against it when the user does not exist so the miss costs
// the same as a real password check.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// CompareDummy implements the PasswordVerifier interface using bcrypt.
func (h *BcryptHasher) CompareDummy() error {
	err := bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte("invalid"))
	if err == nil {
		return fmt.Errorf("dummy comparison unexpectedly succeeded")
	}
	return err
}
