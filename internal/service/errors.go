package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Missing entities addressed by the request surface as store not-found errors
// 2. Rule violations are returned as *Error carrying one of the kinds below
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrReferenceNotFound indicates that a request refers to another entity
	// (an owner, a category) that does not exist.
	// API layer should map this to HTTP 400 Bad Request.
	ErrReferenceNotFound = errors.New("referenced entity does not exist")

	// ErrConflict indicates that the request would duplicate a unique value
	// or an existing link.
	// API layer should map this to HTTP 409 Conflict.
	ErrConflict = errors.New("conflicts with an existing entity")
)

// Error is a rule violation whose Message is safe to return to clients.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Message is the client-facing description.
	Message string
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the kind so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func userMissing(id int64) *Error {
	return newError(ErrReferenceNotFound, "User with ID %d does not exist.", id)
}

func usernameTaken(username string) *Error {
	return newError(ErrConflict, "Username %s already exists.", username)
}

func emailTaken(email string) *Error {
	return newError(ErrConflict, "Username with the same email %s already exists.", email)
}

func categoryNameTaken(name string) *Error {
	return newError(ErrConflict, "Category with name %s already exists.", name)
}

var (
	errCategoriesMissing = newError(ErrReferenceNotFound,
		"One or more provided category IDs do not exist.")
	errAlreadyAssigned = newError(ErrConflict,
		"This category is already assigned to the task.")
)
