package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/store"
)

const roleColumns = `id, name, type, created_at, updated_at`

type roleRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r roleRow) toDomain() (*domain.Role, error) {
	rt, err := domain.ParseRoleType(r.Type)
	if err != nil {
		return nil, err
	}
	return domain.RoleOf(r.ID, domain.RestoreRoleName(r.Name), rt, r.CreatedAt, r.UpdatedAt)
}

func rolesFromRows(rows []roleRow) ([]*domain.Role, error) {
	roles := make([]*domain.Role, 0, len(rows))
	for _, r := range rows {
		role, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// PostgresRoleStore implements store.RoleStore using PostgreSQL.
type PostgresRoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.RoleStore = (*PostgresRoleStore)(nil)

// NewPostgresRoleStore creates a role store.
func NewPostgresRoleStore(db store.DBTX, logger *slog.Logger) *PostgresRoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresRoleStore{
		db:     db,
		logger: logger.With(slog.String("component", "role_store")),
	}
}

// ExistsByName implements store.RoleStore.ExistsByName.
func (s *PostgresRoleStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, s.db, &exists,
		`SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`, name)
	if err != nil {
		return false, failQuery(ctx, s.logger, "role", "exists_by_name", err)
	}
	return exists, nil
}

// GetByName implements store.RoleStore.GetByName.
func (s *PostgresRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var row roleRow
	err := sqlx.GetContext(ctx, s.db, &row, `SELECT `+roleColumns+` FROM roles WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRoleNotFound
		}
		return nil, failQuery(ctx, s.logger, "role", "get_by_name", err)
	}
	return row.toDomain()
}

// List implements store.RoleStore.List.
func (s *PostgresRoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	var rows []roleRow
	if err := sqlx.SelectContext(ctx, s.db, &rows, `SELECT `+roleColumns+` FROM roles ORDER BY id`); err != nil {
		return nil, failQuery(ctx, s.logger, "role", "list", err)
	}
	return rolesFromRows(rows)
}

// Create implements store.RoleStore.Create.
func (s *PostgresRoleStore) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	var row roleRow
	err := sqlx.GetContext(ctx, s.db, &row, `
		INSERT INTO roles (name, type) VALUES ($1, $2)
		RETURNING `+roleColumns,
		role.Name.Value(),
		string(role.Type),
	)
	if err != nil {
		return nil, failQuery(ctx, s.logger, "role", "create", err)
	}
	return row.toDomain()
}

// ListForUser implements store.RoleStore.ListForUser.
func (s *PostgresRoleStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Role, error) {
	var rows []roleRow
	err := sqlx.SelectContext(ctx, s.db, &rows, `
		SELECT r.id, r.name, r.type, r.created_at, r.updated_at
		FROM roles r JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.id`, userID)
	if err != nil {
		return nil, failQuery(ctx, s.logger, "role", "list_for_user", err)
	}
	return rolesFromRows(rows)
}
