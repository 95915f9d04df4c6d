package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/domain/guard"
	"github.com/phrazzld/forum-api/internal/redact"
	"github.com/phrazzld/forum-api/internal/store"
)

// RoleService manages roles and role assignment.
type RoleService interface {
	// Create adds a role with a unique name.
	Create(ctx context.Context, name, roleType string) (*domain.Role, error)

	// List returns every role.
	List(ctx context.Context) ([]*domain.Role, error)

	// AssignToUser links an existing user to the named role.
	AssignToUser(ctx context.Context, userID uuid.UUID, roleName string) error
}

// RoleServiceImpl implements RoleService.
type RoleServiceImpl struct {
	roles  store.RoleStore
	users  store.UserStore
	guard  *guard.RoleGuard
	logger *slog.Logger
}

var _ RoleService = (*RoleServiceImpl)(nil)

// NewRoleService creates a RoleService.
func NewRoleService(roles store.RoleStore, users store.UserStore, logger *slog.Logger) *RoleServiceImpl {
	return &RoleServiceImpl{
		roles:  roles,
		users:  users,
		guard:  guard.NewRoleGuard(roles),
		logger: logger.With("component", "role_service"),
	}
}

// Create adds a role.
func (s *RoleServiceImpl) Create(ctx context.Context, name, roleType string) (*domain.Role, error) {
	rt, err := domain.ParseRoleType(roleType)
	if err != nil {
		return nil, err
	}
	role, err := domain.NewRole(name, rt)
	if err != nil {
		return nil, err
	}

	unique, err := s.guard.IsRoleUnique(ctx, role.Name)
	if err != nil {
		s.logger.Error("failed to check role uniqueness", redact.ErrorAttr(err))
		return nil, NewServiceError("role", "create", err)
	}
	if !unique {
		return nil, ErrRoleAlreadyExists
	}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		if errors.Is(err, store.ErrRoleExists) {
			return nil, ErrRoleAlreadyExists
		}
		s.logger.Error("failed to create role", redact.ErrorAttr(err))
		return nil, NewServiceError("role", "create", err)
	}

	s.logger.Info("role created", "role_id", created.ID, "role_type", created.Type)
	return created, nil
}

// List returns all roles.
func (s *RoleServiceImpl) List(ctx context.Context) ([]*domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		s.logger.Error("failed to list roles", redact.ErrorAttr(err))
		return nil, NewServiceError("role", "list", err)
	}
	return roles, nil
}

// AssignToUser grants a role to a user.
func (s *RoleServiceImpl) AssignToUser(ctx context.Context, userID uuid.UUID, roleName string) error {
	name, err := domain.NewRoleName(roleName)
	if err != nil {
		return err
	}

	valid, err := s.guard.IsValidUserRole(ctx, name)
	if err != nil {
		return NewServiceError("role", "assign", err)
	}
	if !valid {
		return domain.NewNotFoundError("role")
	}

	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return NewServiceError("role", "assign", err)
	}
	if !exists {
		return domain.NewNotFoundError("user")
	}

	role, err := s.roles.GetByName(ctx, name.Value())
	if err != nil {
		return NewServiceError("role", "assign", err)
	}

	if err := s.users.AssignRole(ctx, userID, role.ID); err != nil {
		s.logger.Error("failed to assign role",
			"user_id", userID,
			"role_id", role.ID,
			redact.ErrorAttr(err))
		return NewServiceError("role", "assign", err)
	}

	s.logger.Info("role assigned", "user_id", userID, "role_id", role.ID)
	return nil
}
