package domain

import (
	"time"

	"github.com/google/uuid"
)

// Maintopic is a topic that collects discussions.
// ID and timestamps are zero until the maintopic is persisted.
type Maintopic struct {
	ID          int64
	Title       Title
	Description Description
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsDeleted   bool
	IsClosed    bool
}

// NewMaintopic creates an open, unsaved maintopic.
func NewMaintopic(title Title, description Description, ownerID uuid.UUID) *Maintopic {
	return &Maintopic{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}
}

// MaintopicOf rebuilds a persisted maintopic. Values are trusted.
func MaintopicOf(
	id int64,
	title Title,
	description Description,
	ownerID uuid.UUID,
	createdAt, updatedAt time.Time,
	isDeleted, isClosed bool,
) *Maintopic {
	return &Maintopic{
		ID:          id,
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		IsDeleted:   isDeleted,
		IsClosed:    isClosed,
	}
}

// Update returns a copy with the new title and description.
// It fails with ErrMaintopicUnchanged when both equal the current values.
// Timestamps are left for the store to set.
func (m *Maintopic) Update(title Title, description Description) (*Maintopic, error) {
	if title.Equals(m.Title.Value()) && description.Equals(m.Description.Value()) {
		return nil, ErrMaintopicUnchanged
	}
	c := *m
	c.Title = title
	c.Description = description
	return &c, nil
}

// Close returns a closed copy of m.
func (m *Maintopic) Close() *Maintopic {
	c := *m
	c.IsClosed = true
	return &c
}

// MarkDeleted returns a soft-deleted copy of m.
func (m *Maintopic) MarkDeleted() *Maintopic {
	c := *m
	c.IsDeleted = true
	return &c
}

// AcceptsDiscussions reports whether new discussions may be posted.
func (m *Maintopic) AcceptsDiscussions() bool {
	return !m.IsClosed && !m.IsDeleted
}

// IsOwnedBy reports whether userID created the maintopic.
func (m *Maintopic) IsOwnedBy(userID uuid.UUID) bool {
	return m.OwnerID == userID
}
