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
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/store"
)

const maintopicColumns = `id, title, description, owner_id, is_closed, is_deleted, created_at, updated_at`

type maintopicRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	OwnerID     uuid.UUID `db:"owner_id"`
	IsClosed    bool      `db:"is_closed"`
	IsDeleted   bool      `db:"is_deleted"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r maintopicRow) toDomain() (*domain.Maintopic, error) {
	return domain.MaintopicOf(
		r.ID,
		domain.RestoreTitle(r.Title),
		domain.RestoreDescription(r.Description),
		r.OwnerID,
		r.CreatedAt,
		r.UpdatedAt,
		r.IsDeleted,
		r.IsClosed,
	), nil
}

// PostgresMaintopicStore implements store.MaintopicStore using PostgreSQL.
type PostgresMaintopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.MaintopicStore = (*PostgresMaintopicStore)(nil)

// NewPostgresMaintopicStore creates a maintopic store.
func NewPostgresMaintopicStore(db store.DBTX, logger *slog.Logger) *PostgresMaintopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresMaintopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "maintopic_store")),
	}
}

// ExistsByID implements store.MaintopicStore.ExistsByID.
func (s *PostgresMaintopicStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, s.db, &exists,
		`SELECT EXISTS (SELECT 1 FROM maintopics WHERE id = $1 AND NOT is_deleted)`, id)
	if err != nil {
		return false, failQuery(ctx, s.logger, "maintopic", "exists_by_id", err)
	}
	return exists, nil
}

// GetByID implements store.MaintopicStore.GetByID.
func (s *PostgresMaintopicStore) GetByID(ctx context.Context, id int64) (*domain.Maintopic, error) {
	var row maintopicRow
	err := sqlx.GetContext(ctx, s.db, &row,
		`SELECT `+maintopicColumns+` FROM maintopics WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMaintopicNotFound
		}
		return nil, failQuery(ctx, s.logger, "maintopic", "get_by_id", err)
	}
	return row.toDomain()
}

// List implements store.MaintopicStore.List.
func (s *PostgresMaintopicStore) List(
	ctx context.Context,
	page store.Page,
) (store.PageResult[*domain.Maintopic], error) {
	result, err := listPage(ctx, s.db, page,
		`SELECT COUNT(*) FROM maintopics WHERE NOT is_deleted`,
		`SELECT `+maintopicColumns+` FROM maintopics WHERE NOT is_deleted
		ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		nil,
		maintopicRow.toDomain,
	)
	if err != nil {
		return result, failQuery(ctx, s.logger, "maintopic", "list", err)
	}
	return result, nil
}

// Create implements store.MaintopicStore.Create.
func (s *PostgresMaintopicStore) Create(ctx context.Context, m *domain.Maintopic) (*domain.Maintopic, error) {
	var row maintopicRow
	err := sqlx.GetContext(ctx, s.db, &row, `
		INSERT INTO maintopics (title, description, owner_id, is_closed)
		VALUES ($1, $2, $3, $4)
		RETURNING `+maintopicColumns,
		m.Title.Value(),
		m.Description.Value(),
		m.OwnerID,
		m.IsClosed,
	)
	if err != nil {
		return nil, failQuery(ctx, s.logger, "maintopic", "create", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("maintopic inserted",
		slog.Int64("maintopic_id", row.ID))
	return row.toDomain()
}

// Update implements store.MaintopicStore.Update.
func (s *PostgresMaintopicStore) Update(ctx context.Context, m *domain.Maintopic) (*domain.Maintopic, error) {
	var row maintopicRow
	err := sqlx.GetContext(ctx, s.db, &row, `
		UPDATE maintopics
		SET title = $2, description = $3, is_closed = $4, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
		RETURNING `+maintopicColumns,
		m.ID,
		m.Title.Value(),
		m.Description.Value(),
		m.IsClosed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMaintopicNotFound
		}
		return nil, failQuery(ctx, s.logger, "maintopic", "update", err)
	}
	return row.toDomain()
}

// Delete implements store.MaintopicStore.Delete.
func (s *PostgresMaintopicStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE maintopics SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return failQuery(ctx, s.logger, "maintopic", "delete", err)
	}
	return CheckRowsAffected(res, store.ErrMaintopicNotFound)
}
