package domain

import (
	"time"

	"github.com/google/uuid"
)

// Discussion is a single post inside a maintopic.
type Discussion struct {
	ID          int64
	Paragraph   Paragraph
	MaintopicID int64
	AuthorID    uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewDiscussion creates an unsaved discussion.
func NewDiscussion(paragraph Paragraph, maintopicID int64, authorID uuid.UUID) *Discussion {
	return &Discussion{
		Paragraph:   paragraph,
		MaintopicID: maintopicID,
		AuthorID:    authorID,
	}
}

// DiscussionOf rebuilds a persisted discussion.
func DiscussionOf(
	id int64,
	paragraph Paragraph,
	maintopicID int64,
	authorID uuid.UUID,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Discussion {
	return &Discussion{
		ID:          id,
		Paragraph:   paragraph,
		MaintopicID: maintopicID,
		AuthorID:    authorID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

// IsDeleted reports whether the discussion was soft-deleted.
func (d *Discussion) IsDeleted() bool {
	return d.DeletedAt != nil
}
