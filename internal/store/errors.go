package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// The entity-specific errors below (ErrUserNotFound, ErrMaintopicNotFound, ...)
	// all wrap it, so callers can test for the whole family at once.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness
	// constraint, e.g. registering an email that is already taken.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects an entity,
	// e.g. a foreign key pointing at a missing row or a failed check
	// constraint. The wrapped message names the offending column or constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrDefaultRoleMissing is returned by UserStore.Create when no role row
	// exists for one of the user's role types. Migrations seed both types.
	ErrDefaultRoleMissing = errors.New("default role missing")

	// ErrTransactionFailed is returned when a transaction cannot be committed.
	// The driver error is included in the message, not wrapped.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that no user matches the id, email or login id.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrMaintopicNotFound indicates that the maintopic does not exist or was deleted.
	ErrMaintopicNotFound = fmt.Errorf("%w: maintopic", ErrNotFound)

	// ErrDiscussionNotFound indicates that the requested discussion does not exist.
	ErrDiscussionNotFound = fmt.Errorf("%w: discussion", ErrNotFound)

	// ErrRoleNotFound indicates that no role matches the id or name.
	ErrRoleNotFound = fmt.Errorf("%w: role", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists is returned by UserStore.Create when the email is already registered.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrLoginIDExists is returned by UserStore.Create when the login id is already taken.
	ErrLoginIDExists = fmt.Errorf("%w: login id", ErrDuplicate)

	// ErrRoleExists is returned by RoleStore.Create when the role name is taken.
	ErrRoleExists = fmt.Errorf("%w: role", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Every entity-specific not found error wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
// Every entity-specific duplicate error wraps ErrDuplicate.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "maintopic")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Human-readable context
	Err       error  // Underlying error, usually a mapped sentinel
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
