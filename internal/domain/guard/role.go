package guard

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
)

// RoleExistence reports whether roles exist.
type RoleExistence interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// RoleGuard answers role uniqueness and validity questions.
type RoleGuard struct {
	roles RoleExistence
}

// NewRoleGuard creates a RoleGuard.
func NewRoleGuard(roles RoleExistence) *RoleGuard {
	return &RoleGuard{roles: roles}
}

// IsRoleUnique reports whether no role is named name yet.
func (g *RoleGuard) IsRoleUnique(ctx context.Context, name domain.RoleName) (bool, error) {
	exists, err := g.roles.ExistsByName(ctx, name.Value())
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// IsValidUserRole reports whether name refers to an existing role.
func (g *RoleGuard) IsValidUserRole(ctx context.Context, name domain.RoleName) (bool, error) {
	return g.roles.ExistsByName(ctx, name.Value())
}
