package domain

import (
	"strings"
	"time"
	"unicode"
)

// User represents a registered account. A user is the tenant boundary:
// every task is owned by exactly one user and is invisible to all others.
type User struct {
	// ID is assigned by the store on creation.
	ID int64 `json:"id"`

	// Email is the unique login identifier, stored lowercased and trimmed.
	Email string `json:"email"`

	// Name is the display name, derived from the email when not supplied.
	Name string `json:"name"`

	// HashedPassword is the bcrypt hash. Never serialized.
	HashedPassword string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a User with a normalized email and the display name
// resolved (deriving a default from the email when name is blank).
// The caller is responsible for hashing the password before storage;
// NewUser never sees the plaintext.
func NewUser(email, name string) (*User, error) {
	email = NormalizeEmail(email)

	user := &User{
		Email:     email,
		Name:      resolveDisplayName(name, email),
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's identity fields. The password hash is not
// validated here: a user loaded from the store always carries one, and
// a user under construction receives it after hashing.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailShape(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address so that inputs
// differing only by case or surrounding whitespace identify the same
// account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword checks plaintext password bounds before hashing.
// Any non-empty password is accepted up to bcrypt's 72-byte input limit;
// no minimum length is imposed.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) > 72:
		return ErrPasswordTooLong
	}
	return nil
}

// resolveDisplayName returns the trimmed supplied name, or a default
// derived from the email when the name is empty or whitespace-only.
func resolveDisplayName(name, email string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	return DefaultNameFromEmail(email)
}

// DefaultNameFromEmail derives a display name from the local part of an
// email address: separators become spaces and each word is title-cased.
// "jane.doe@example.com" becomes "Jane Doe". Pure function.
func DefaultNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}

	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// validEmailShape performs a minimal structural check: one '@' with a
// non-empty local part and a domain containing an interior dot. Anything
// stricter is left to the request validator.
func validEmailShape(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
