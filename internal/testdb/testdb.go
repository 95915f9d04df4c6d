// Package testdb provides helpers for tests that run against a real
// Postgres database. Tests using it should carry the integration build tag
// and skip when no database URL is configured.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/platform/postgres"
)

// Environment variables consulted, in order, for the test database URL.
const (
	EnvTestDatabaseURL = "FORUM_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// DefaultTimeout bounds setup and every transaction started by WithTx.
const DefaultTimeout = 10 * time.Second

// ErrNoDatabaseURL is returned by Setup when neither variable is set.
var ErrNoDatabaseURL = errors.New("no test database URL configured")

// DatabaseURL returns the first non-empty URL from FORUM_TEST_DATABASE_URL
// or DATABASE_URL.
func DatabaseURL() string {
	for _, name := range []string{EnvTestDatabaseURL, EnvDatabaseURL} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// MaskURL hides the password in a database URL so it can be printed.
func MaskURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "[unparseable url]"
	}
	return u.Redacted()
}

// Setup opens the test database and applies all migrations.
// The caller owns the returned handle.
func Setup(ctx context.Context, logger *slog.Logger) (*sqlx.DB, error) {
	dbURL := DatabaseURL()
	if dbURL == "" {
		return nil, ErrNoDatabaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, config.DatabaseConfig{URL: dbURL, MaxOpenConns: 5, MaxIdleConns: 2})
	if err != nil {
		return nil, fmt.Errorf("test database %s: %w", MaskURL(dbURL), err)
	}
	if err := postgres.Migrate(ctx, db.DB, postgres.MigrateUp, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}
	return db, nil
}

// WithTx runs fn inside a transaction that is always rolled back, so tests
// never see each other's rows.
func WithTx(t *testing.T, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin test transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(ctx, tx)
}
