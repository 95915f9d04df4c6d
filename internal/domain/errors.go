package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error. The API layer maps each kind to an HTTP status.
type Kind int

// Error kinds.
const (
	KindInternal Kind = iota
	KindBadRequest
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
)

// String returns the machine-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is the single error type raised by the domain layer.
// Type is a stable machine-readable code (e.g. "title_too_short"),
// Message is safe to show to API clients.
type Error struct {
	Kind    Kind
	Type    string
	Message string
	Field   string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, field, typ, message string) *Error {
	return &Error{Kind: kind, Field: field, Type: typ, Message: message}
}

// NewValidationError creates a BadRequest error for a specific field.
func NewValidationError(field, typ, message string) *Error {
	return newError(KindBadRequest, field, typ, message)
}

// NewConflictError creates a Conflict error.
func NewConflictError(typ, message string) *Error {
	return newError(KindConflict, "", typ, message)
}

// NewNotFoundError creates a NotFound error for the named resource.
func NewNotFoundError(resource string) *Error {
	return newError(KindNotFound, "", resource+"_not_found", resource+" not found")
}

// NewForbiddenError creates a Forbidden error.
func NewForbiddenError(message string) *Error {
	return newError(KindForbidden, "", "forbidden", message)
}

// NewUnauthorizedError creates an Unauthorized error.
func NewUnauthorizedError(message string) *Error {
	return newError(KindUnauthorized, "", "unauthorized", message)
}

// NewInternalError wraps an unexpected failure. Only message reaches clients.
func NewInternalError(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Type: "internal_error", Message: message, Err: cause}
}

// KindOf reports the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// AsError returns the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	ok := errors.As(err, &de)
	return de, ok
}

// Entity-level errors that are not tied to a single value object.
var (
	ErrMaintopicUnchanged = NewValidationError("maintopic", "maintopic_unchanged",
		"title and description are identical to the current values")
	ErrMaintopicClosed = NewConflictError("maintopic_closed",
		"maintopic is closed or deleted and does not accept discussions")
	ErrEmptyRoleID = NewValidationError("role_id", "role_id_required", "role id must not be empty")
)
