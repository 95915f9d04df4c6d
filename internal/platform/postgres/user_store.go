package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/store"
)

const userColumns = `u.id, u.user_name, u.email, u.login_id, u.hashed_password,
	u.is_active, u.is_deleted, u.created_at, u.updated_at,
	COALESCE(STRING_AGG(DISTINCT r.type, ',' ORDER BY r.type), '') AS role_types`

const userFrom = `FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id`

type userRow struct {
	ID             uuid.UUID      `db:"id"`
	UserName       string         `db:"user_name"`
	Email          string         `db:"email"`
	LoginID        sql.NullString `db:"login_id"`
	HashedPassword string         `db:"hashed_password"`
	IsActive       bool           `db:"is_active"`
	IsDeleted      bool           `db:"is_deleted"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	RoleTypes      string         `db:"role_types"`
}

func (r userRow) toDomain() (*domain.User, error) {
	var roles []domain.RoleType
	if r.RoleTypes != "" {
		for _, raw := range strings.Split(r.RoleTypes, ",") {
			rt, err := domain.ParseRoleType(raw)
			if err != nil {
				return nil, fmt.Errorf("user %s has unknown role type %q: %w", r.ID, raw, err)
			}
			roles = append(roles, rt)
		}
	}
	return domain.UserOf(
		r.ID,
		domain.RestoreUserName(r.UserName),
		domain.RestoreEmail(r.Email),
		r.HashedPassword,
		domain.RestoreLoginID(r.LoginID.String),
		r.IsActive,
		r.IsDeleted,
		roles,
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}

// PostgresUserStore implements store.UserStore using PostgreSQL.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// NewPostgresUserStore creates a user store on db, which may be a *sqlx.DB or *sqlx.Tx.
// If logger is nil, the default logger is used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// DB returns the underlying connection or transaction.
func (s *PostgresUserStore) DB() store.DBTX {
	return s.db
}

// WithTx implements store.UserStore.WithTx.
func (s *PostgresUserStore) WithTx(tx *sqlx.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, logger: s.logger}
}

// ExistsByEmail implements store.UserStore.ExistsByEmail.
func (s *PostgresUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, s.db, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email)
	if err != nil {
		return false, s.fail(ctx, "exists_by_email", err)
	}
	return exists, nil
}

// ExistsByID implements store.UserStore.ExistsByID.
func (s *PostgresUserStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, s.db, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		return false, s.fail(ctx, "exists_by_id", err)
	}
	return exists, nil
}

// Create implements store.UserStore.Create. On a *sqlx.DB the user row and
// its role links are written in one transaction.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.HashedPassword == "" {
		return nil, fmt.Errorf("%w: user has no hashed password", store.ErrInvalidEntity)
	}

	var created *domain.User
	insert := func(ctx context.Context, q store.DBTX) error {
		var err error
		created, err = s.insert(ctx, q, user)
		return err
	}

	var err error
	if db, ok := s.db.(*sqlx.DB); ok {
		err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
			return insert(ctx, tx)
		})
	} else {
		err = insert(ctx, s.db)
	}
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user created",
		slog.String("user_id", created.ID.String()))
	return created, nil
}

func (s *PostgresUserStore) insert(ctx context.Context, q store.DBTX, user *domain.User) (*domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, q, &row, `
		INSERT INTO users (id, user_name, email, login_id, hashed_password, is_active, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_name, email, login_id, hashed_password, is_active, is_deleted,
			created_at, updated_at, '' AS role_types`,
		user.ID,
		user.UserName.Value(),
		user.Email.Value(),
		nullString(user.LoginID.Value()),
		user.HashedPassword,
		user.IsActive,
		user.IsDeleted,
	)
	if err != nil {
		return nil, s.fail(ctx, "create", err)
	}

	for _, rt := range user.Roles {
		res, err := q.ExecContext(ctx, `
			INSERT INTO user_roles (user_id, role_id)
			SELECT $1, id FROM roles WHERE type = $2 ORDER BY id LIMIT 1
			ON CONFLICT DO NOTHING`,
			user.ID, string(rt))
		if err != nil {
			return nil, s.fail(ctx, "create", err)
		}
		missing := fmt.Errorf("%w: no role of type %s", store.ErrDefaultRoleMissing, rt)
		if err := CheckRowsAffected(res, missing); err != nil {
			return nil, err
		}
	}

	created, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return created.WithRoles(user.Roles...), nil
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getOne(ctx, "get_by_id", `u.id = $1`, id)
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "get_by_email", `LOWER(u.email) = LOWER($1)`, email)
}

// GetByLoginID implements store.UserStore.GetByLoginID.
func (s *PostgresUserStore) GetByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	return s.getOne(ctx, "get_by_login_id", `u.login_id = $1`, loginID)
}

func (s *PostgresUserStore) getOne(ctx context.Context, op, where string, arg interface{}) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` ` + userFrom + ` WHERE ` + where + ` GROUP BY u.id`

	var row userRow
	if err := sqlx.GetContext(ctx, s.db, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, s.fail(ctx, op, err)
	}
	return row.toDomain()
}

// AssignRole implements store.UserStore.AssignRole.
func (s *PostgresUserStore) AssignRole(ctx context.Context, userID uuid.UUID, roleID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		userID, roleID)
	if err != nil {
		return s.fail(ctx, "assign_role", err)
	}
	return nil
}

func (s *PostgresUserStore) fail(ctx context.Context, op string, err error) error {
	return failQuery(ctx, s.logger, "user", op, err)
}

