package service

import (
	"fmt"

	"github.com/phrazzld/forum-api/internal/domain"
)

// Service-level errors. Each is a *domain.Error so the API layer classifies
// it by Kind; callers check for them with errors.Is.
var (
	// ErrNotOwned indicates the actor is neither the owner of the resource nor an administrator.
	ErrNotOwned = domain.NewForbiddenError("only the owner or an administrator may modify this resource")

	// ErrInvalidCredentials is returned by Authenticate for unknown accounts,
	// disabled accounts and wrong passwords alike.
	ErrInvalidCredentials = domain.NewUnauthorizedError("invalid credentials")

	// ErrRoleAlreadyExists is returned when a role name is taken.
	ErrRoleAlreadyExists = domain.NewConflictError("role_already_exists", "role already exists")
)

// UpdateFailedMessage is the only message a failed maintopic update reports.
const UpdateFailedMessage = "update failed"

// ServiceError records which service operation a lower-level failure came from.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err with the service and operation names.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Err: err}
}
