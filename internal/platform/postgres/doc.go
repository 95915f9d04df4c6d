// Package postgres implements the internal/store interfaces on PostgreSQL
// through sqlx and the pgx stdlib driver. Schema changes live in the
// embedded migrations directory and are applied with goose via Migrate.
package postgres
