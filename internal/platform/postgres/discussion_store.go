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

const discussionColumns = `id, paragraph, maintopic_id, author_id, created_at, updated_at, deleted_at`

type discussionRow struct {
	ID          int64        `db:"id"`
	Paragraph   string       `db:"paragraph"`
	MaintopicID int64        `db:"maintopic_id"`
	AuthorID    uuid.UUID    `db:"author_id"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeletedAt   sql.NullTime `db:"deleted_at"`
}

func (r discussionRow) toDomain() (*domain.Discussion, error) {
	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		deletedAt = &t
	}
	return domain.DiscussionOf(
		r.ID,
		domain.RestoreParagraph(r.Paragraph),
		r.MaintopicID,
		r.AuthorID,
		r.CreatedAt,
		r.UpdatedAt,
		deletedAt,
	), nil
}

// PostgresDiscussionStore implements store.DiscussionStore using PostgreSQL.
type PostgresDiscussionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.DiscussionStore = (*PostgresDiscussionStore)(nil)

// NewPostgresDiscussionStore creates a discussion store.
func NewPostgresDiscussionStore(db store.DBTX, logger *slog.Logger) *PostgresDiscussionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresDiscussionStore{
		db:     db,
		logger: logger.With(slog.String("component", "discussion_store")),
	}
}

// Create implements store.DiscussionStore.Create.
func (s *PostgresDiscussionStore) Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
	var row discussionRow
	err := sqlx.GetContext(ctx, s.db, &row, `
		INSERT INTO discussions (paragraph, maintopic_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING `+discussionColumns,
		d.Paragraph.Value(),
		d.MaintopicID,
		d.AuthorID,
	)
	if err != nil {
		return nil, failQuery(ctx, s.logger, "discussion", "create", err)
	}
	return row.toDomain()
}

// GetByID implements store.DiscussionStore.GetByID.
func (s *PostgresDiscussionStore) GetByID(ctx context.Context, id int64) (*domain.Discussion, error) {
	var row discussionRow
	err := sqlx.GetContext(ctx, s.db, &row,
		`SELECT `+discussionColumns+` FROM discussions WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDiscussionNotFound
		}
		return nil, failQuery(ctx, s.logger, "discussion", "get_by_id", err)
	}
	return row.toDomain()
}

// List implements store.DiscussionStore.List.
func (s *PostgresDiscussionStore) List(
	ctx context.Context,
	page store.Page,
) (store.PageResult[*domain.Discussion], error) {
	result, err := listPage(ctx, s.db, page,
		`SELECT COUNT(*) FROM discussions WHERE deleted_at IS NULL`,
		`SELECT `+discussionColumns+` FROM discussions WHERE deleted_at IS NULL
		ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		nil,
		discussionRow.toDomain,
	)
	if err != nil {
		return result, failQuery(ctx, s.logger, "discussion", "list", err)
	}
	return result, nil
}

// ListByMaintopic implements store.DiscussionStore.ListByMaintopic.
func (s *PostgresDiscussionStore) ListByMaintopic(
	ctx context.Context,
	maintopicID int64,
	page store.Page,
) (store.PageResult[*domain.Discussion], error) {
	result, err := listPage(ctx, s.db, page,
		`SELECT COUNT(*) FROM discussions WHERE maintopic_id = $1 AND deleted_at IS NULL`,
		`SELECT `+discussionColumns+` FROM discussions WHERE maintopic_id = $1 AND deleted_at IS NULL
		ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		[]interface{}{maintopicID},
		discussionRow.toDomain,
	)
	if err != nil {
		return result, failQuery(ctx, s.logger, "discussion", "list_by_maintopic", err)
	}
	return result, nil
}
