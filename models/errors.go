package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for both an unknown username and
	// a wrong password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid username or password")

	// ErrAdminDelete guards the seeded administrator row.
	ErrAdminDelete = errors.New("The admin user can't be deleted.")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError reports a uniqueness-check hit, naming the conflicting field.
type DuplicateError struct {
	Field   string
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

func NewDuplicateError(field, format string, args ...interface{}) *DuplicateError {
	return &DuplicateError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ReferenceError reports a payload referencing a row that does not exist,
// for example a project pointing at an unknown owning user.
type ReferenceError struct {
	Message string
}

func (e *ReferenceError) Error() string {
	return e.Message
}

func NewReferenceError(format string, args ...interface{}) *ReferenceError {
	return &ReferenceError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent entity addressed by id.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
