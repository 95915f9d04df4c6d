package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/service/auth"
	"github.com/phrazzld/forum-api/internal/store"
)

// Names of the roles every installation starts with.
const (
	AdminRoleName = "admin"
	UserRoleName  = "user"
)

var defaultRoles = []struct {
	name     string
	roleType domain.RoleType
}{
	{AdminRoleName, domain.RoleTypeAdmin},
	{UserRoleName, domain.RoleTypeUser},
}

type seeder struct {
	roles  store.RoleStore
	users  store.UserStore
	hasher auth.PasswordHasher
	logger *slog.Logger
}

func newSeeder(
	roles store.RoleStore,
	users store.UserStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *seeder {
	return &seeder{
		roles:  roles,
		users:  users,
		hasher: hasher,
		logger: logger.With("component", "seeder"),
	}
}

// Seed creates the default roles, then the admin account.
func (s *seeder) Seed(ctx context.Context, cfg config.SeedConfig) error {
	if err := s.seedRoles(ctx); err != nil {
		return err
	}
	return s.seedAdmin(ctx, cfg)
}

func (s *seeder) seedRoles(ctx context.Context) error {
	for _, r := range defaultRoles {
		exists, err := s.roles.ExistsByName(ctx, r.name)
		if err != nil {
			return fmt.Errorf("failed to check role %q: %w", r.name, err)
		}
		if exists {
			s.logger.Debug("role already present", "role_name", r.name)
			continue
		}

		role, err := domain.NewRole(r.name, r.roleType)
		if err != nil {
			return err
		}
		if _, err := s.roles.Create(ctx, role); err != nil && !errors.Is(err, store.ErrRoleExists) {
			return fmt.Errorf("failed to create role %q: %w", r.name, err)
		}
		s.logger.Info("role created", "role_name", r.name, "role_type", string(r.roleType))
	}
	return nil
}

// seedAdmin creates the admin account, or grants the admin role to an
// existing account with the same email.
func (s *seeder) seedAdmin(ctx context.Context, cfg config.SeedConfig) error {
	existing, err := s.users.GetByEmail(ctx, cfg.AdminEmail)
	switch {
	case err == nil:
		if existing.HasRole(domain.RoleTypeAdmin) {
			s.logger.Info("admin account already present", "user_id", existing.ID)
			return nil
		}
		adminRole, err := s.roles.GetByName(ctx, AdminRoleName)
		if err != nil {
			return fmt.Errorf("failed to load admin role: %w", err)
		}
		if err := s.users.AssignRole(ctx, existing.ID, adminRole.ID); err != nil {
			return fmt.Errorf("failed to grant admin role: %w", err)
		}
		s.logger.Info("admin role granted to existing account", "user_id", existing.ID)
		return nil
	case !errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	user, err := domain.NewUser(cfg.AdminUserName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}
	if cfg.AdminLoginID != "" {
		loginID, err := domain.NewLoginID(cfg.AdminLoginID)
		if err != nil {
			return fmt.Errorf("invalid admin login id: %w", err)
		}
		user = user.WithLoginID(loginID)
	}

	hash, err := s.hasher.Hash(user.Password.Value())
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	user = user.WithHashedPassword(hash).WithRoles(domain.RoleTypeAdmin, domain.RoleTypeUser)

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	s.logger.Info("admin account created", "user_id", created.ID)
	return nil
}
