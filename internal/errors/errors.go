// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrEmptyUpdate is returned when an update request carries no fields.
// It is checked before any statement is built or issued.
var ErrEmptyUpdate = errors.New("no fields to update")

// NotFoundError means the identifier does not exist for a get/update/delete.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// Helper constructor
func NewNotFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConstraintError means a write conflicted with a storage constraint
// (unique email, unique product name). It carries the underlying cause.
type ConstraintError struct {
	Cause error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation: %v", e.Cause)
}

func (e *ConstraintError) Unwrap() error { return e.Cause }

func NewConstraint(cause error) error {
	return &ConstraintError{Cause: cause}
}

// UnavailableError means the pool could not supply a usable connection.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("database unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

func NewUnavailable(cause error) error {
	return &UnavailableError{Cause: cause}
}
