package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/forum-api/internal/store"
)

// SQLSTATE codes for integrity constraint violations.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// Unique constraints with a dedicated store error.
const (
	constraintUserEmail   = "users_email_lower_key"
	constraintUserLoginID = "users_login_id_key"
	constraintRoleName    = "roles_name_key"
)

var duplicateErrors = map[string]error{
	constraintUserEmail:   store.ErrEmailExists,
	constraintUserLoginID: store.ErrLoginIDExists,
	constraintRoleName:    store.ErrRoleExists,
}

var invalidEntityViolations = map[string]string{
	foreignKeyViolationCode: "foreign key violation",
	checkViolationCode:      "check constraint violation",
	notNullViolationCode:    "not null violation",
}

// MapError translates driver errors into store errors. The driver error is
// kept in the message but only the store sentinel is wrapped.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if pgErr.Code == uniqueViolationCode {
		if specific, ok := duplicateErrors[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%w: %v", specific, err)
		}
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}

	if what, ok := invalidEntityViolations[pgErr.Code]; ok {
		subject := pgErr.ConstraintName
		if pgErr.Code == notNullViolationCode {
			subject = pgErr.ColumnName
		}
		return fmt.Errorf("%w: %s (%s): %v", store.ErrInvalidEntity, what, subject, err)
	}

	return err
}

// CheckRowsAffected returns notFound (store.ErrNotFound when nil) if an
// UPDATE or DELETE matched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("invalid result: nil sql.Result")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}
