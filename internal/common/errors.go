// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Registration / recovery errors.
	ErrInvalidField       = errors.New("invalid field")
	ErrInvalidCredential  = errors.New("code or email is incorrect")
	ErrCodeSpaceExhausted = errors.New("could not allocate a free code")

	// Collaborator errors.
	ErrDelivery      = errors.New("notification delivery failed")
	ErrConfiguration = errors.New("configuration error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// InvalidFieldError reports which submitted field failed validation and why.
// It matches ErrInvalidField with errors.Is.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s is invalid: %s", e.Field, e.Reason)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// NewInvalidFieldError builds an InvalidFieldError.
func NewInvalidFieldError(field, reason string) error {
	return &InvalidFieldError{Field: field, Reason: reason}
}
