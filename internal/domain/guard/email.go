package guard

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
)

// ErrEmailAlreadyExists is returned when another account uses the address.
var ErrEmailAlreadyExists = domain.NewConflictError("email_already_exists", "email already exists")

// UserExistence reports whether users exist.
type UserExistence interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// EmailGuard enforces email uniqueness.
type EmailGuard struct {
	users UserExistence
}

// NewEmailGuard creates an EmailGuard.
func NewEmailGuard(users UserExistence) *EmailGuard {
	return &EmailGuard{users: users}
}

// EnsureEmailIsUnique fails with ErrEmailAlreadyExists if the address is taken.
func (g *EmailGuard) EnsureEmailIsUnique(ctx context.Context, email domain.Email) error {
	exists, err := g.users.ExistsByEmail(ctx, email.Value())
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}
	return nil
}
