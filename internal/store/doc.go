// Package store declares the persistence ports used by the services,
// the pagination types they share and the sentinel errors implementations
// return. RunInTransaction runs a function in a sqlx transaction.
package store
