package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/redact"
	"github.com/phrazzld/forum-api/internal/store"
)

// failQuery maps and logs a failed query. Constraint violations come back as
// the mapped store error; anything else is wrapped in a *store.StoreError.
func failQuery(ctx context.Context, fallback *slog.Logger, entity, op string, err error) error {
	mapped := MapError(err)
	log := logger.FromContextOrDefault(ctx, fallback)
	if errors.Is(mapped, store.ErrDuplicate) || errors.Is(mapped, store.ErrInvalidEntity) {
		log.Warn(entity+" store constraint violation",
			slog.String("operation", op),
			redact.ErrorAttr(err))
		return mapped
	}
	log.Error(entity+" store query failed",
		slog.String("operation", op),
		redact.ErrorAttr(err))
	return store.NewStoreError(entity, op, "query failed", mapped)
}

// listPage runs countQuery and listQuery with the same filter args. listQuery
// must end with LIMIT and OFFSET placeholders following those args.
func listPage[R any, T any](
	ctx context.Context,
	db store.DBTX,
	page store.Page,
	countQuery, listQuery string,
	args []interface{},
	convert func(R) (T, error),
) (store.PageResult[T], error) {
	var total int64
	if err := sqlx.GetContext(ctx, db, &total, countQuery, args...); err != nil {
		return store.PageResult[T]{}, fmt.Errorf("count: %w", err)
	}

	var rows []R
	listArgs := append(append([]interface{}{}, args...), page.Limit(), page.Offset())
	if err := sqlx.SelectContext(ctx, db, &rows, listQuery, listArgs...); err != nil {
		return store.PageResult[T]{}, fmt.Errorf("select: %w", err)
	}

	items := make([]T, 0, len(rows))
	for _, r := range rows {
		item, err := convert(r)
		if err != nil {
			return store.PageResult[T]{}, err
		}
		items = append(items, item)
	}
	return store.PageResult[T]{Items: items, Total: total, Page: page}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
