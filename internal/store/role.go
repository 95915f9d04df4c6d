package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/domain"
)

// RoleStore defines the interface for role persistence.
type RoleStore interface {
	// ExistsByName reports whether a role with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// GetByName retrieves a role by name.
	// Returns ErrRoleNotFound if it does not exist.
	GetByName(ctx context.Context, name string) (*domain.Role, error)

	// List returns every role ordered by ID.
	List(ctx context.Context) ([]*domain.Role, error)

	// Create inserts a role. Returns ErrRoleExists if the name is taken.
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)

	// ListForUser returns the roles linked to a user.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Role, error)
}
