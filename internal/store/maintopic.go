package store

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
)

// MaintopicStore defines the interface for maintopic persistence.
// Soft-deleted maintopics are invisible to every read method.
type MaintopicStore interface {
	// ExistsByID reports whether a live maintopic has the given ID.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// GetByID retrieves a maintopic.
	// Returns ErrMaintopicNotFound if it does not exist or was deleted.
	GetByID(ctx context.Context, id int64) (*domain.Maintopic, error)

	// List returns one page of maintopics, newest first.
	List(ctx context.Context, page Page) (PageResult[*domain.Maintopic], error)

	// Create inserts m and returns it with its ID and timestamps.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, m *domain.Maintopic) (*domain.Maintopic, error)

	// Update writes title, description and closed state, bumping updated_at.
	// Returns ErrMaintopicNotFound if it does not exist or was deleted.
	Update(ctx context.Context, m *domain.Maintopic) (*domain.Maintopic, error)

	// Delete soft-deletes a maintopic.
	// Returns ErrMaintopicNotFound if it does not exist or was already deleted.
	Delete(ctx context.Context, id int64) error
}
