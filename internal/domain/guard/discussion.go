package guard

import "context"

// MaintopicExistence reports whether maintopics exist.
type MaintopicExistence interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// DiscussionGuard checks preconditions for posting discussions.
type DiscussionGuard struct {
	maintopics MaintopicExistence
}

// NewDiscussionGuard creates a DiscussionGuard.
func NewDiscussionGuard(maintopics MaintopicExistence) *DiscussionGuard {
	return &DiscussionGuard{maintopics: maintopics}
}

// IsDuplicateDiscussionExists reports whether the maintopic exists.
//
// The name is misleading: it does not look for duplicate discussions. It is a
// plain pass-through to the maintopic existence check and callers rely on that.
func (g *DiscussionGuard) IsDuplicateDiscussionExists(ctx context.Context, maintopicID int64) (bool, error) {
	return g.maintopics.ExistsByID(ctx, maintopicID)
}
