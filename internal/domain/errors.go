// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyEmail is returned when an email address is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyPassword is returned when no password material is present.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's practical limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrEmptyStatus is returned when a task status is empty.
	ErrEmptyStatus = errors.New("task status cannot be empty")

	// ErrMissingOwner is returned when a task has no owning user.
	ErrMissingOwner = errors.New("task must belong to a user")
)
