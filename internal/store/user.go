package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/forum-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// ExistsByEmail reports whether any user, deleted or not, holds the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByID reports whether a user with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Create saves a new user and links it to one role of each type in user.Roles.
	// The user must already carry a HashedPassword.
	// Returns ErrEmailExists or ErrLoginIDExists on uniqueness violations.
	// The returned user carries the timestamps set by the database.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID retrieves a user by their unique ID, including role types.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email address (case-insensitive).
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByLoginID retrieves a user by login id.
	// Returns ErrUserNotFound if the user does not exist.
	GetByLoginID(ctx context.Context, loginID string) (*domain.User, error)

	// AssignRole links a user to a role. Assigning a role twice is a no-op.
	// Returns ErrInvalidEntity if either side does not exist.
	AssignRole(ctx context.Context, userID uuid.UUID, roleID int64) error

	// WithTx returns a UserStore that runs its queries on tx.
	WithTx(tx *sqlx.Tx) UserStore
}
