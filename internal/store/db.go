package store

import (
	"github.com/jmoiron/sqlx"
)

// DBTX is implemented by both *sqlx.DB and *sqlx.Tx, so store implementations
// work the same inside and outside a transaction.
type DBTX interface {
	sqlx.ExtContext
}
