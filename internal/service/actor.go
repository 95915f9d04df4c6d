package service

import (
	"slices"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/domain"
)

// Actor is the authenticated user on whose behalf an operation runs.
type Actor struct {
	UserID uuid.UUID
	Roles  []domain.RoleType
}

// IsAdmin reports whether the actor holds the ADMIN role type.
func (a Actor) IsAdmin() bool {
	return slices.Contains(a.Roles, domain.RoleTypeAdmin)
}

// canModify reports whether the actor may change a resource owned by ownerID.
func (a Actor) canModify(ownerID uuid.UUID) bool {
	return a.UserID == ownerID || a.IsAdmin()
}
