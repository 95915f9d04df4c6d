package store

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
)

// DiscussionStore defines the interface for discussion persistence.
type DiscussionStore interface {
	// Create inserts d and returns it with its ID and timestamps.
	// Returns ErrInvalidEntity if the maintopic or author does not exist.
	Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error)

	// GetByID retrieves a discussion that has not been deleted.
	// Returns ErrDiscussionNotFound otherwise.
	GetByID(ctx context.Context, id int64) (*domain.Discussion, error)

	// List returns one page of all live discussions, oldest first.
	List(ctx context.Context, page Page) (PageResult[*domain.Discussion], error)

	// ListByMaintopic returns one page of a maintopic's live discussions, oldest first.
	ListByMaintopic(ctx context.Context, maintopicID int64, page Page) (PageResult[*domain.Discussion], error)
}
