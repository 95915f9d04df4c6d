package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/domain/guard"
	"github.com/phrazzld/forum-api/internal/redact"
	"github.com/phrazzld/forum-api/internal/store"
)

// DiscussionService manages posts within maintopics.
type DiscussionService interface {
	// Create normalizes the paragraph and posts it to a live, open maintopic.
	Create(ctx context.Context, actor Actor, maintopicID int64, paragraph string) (*domain.Discussion, error)

	// Get retrieves a discussion that has not been deleted.
	Get(ctx context.Context, id int64) (*domain.Discussion, error)

	// List returns one page of all discussions, oldest first.
	List(ctx context.Context, page store.Page) (store.PageResult[*domain.Discussion], error)

	// ListByMaintopic returns one page of a live maintopic's discussions.
	ListByMaintopic(ctx context.Context, maintopicID int64, page store.Page) (store.PageResult[*domain.Discussion], error)
}

// DiscussionServiceImpl implements DiscussionService.
type DiscussionServiceImpl struct {
	discussions store.DiscussionStore
	maintopics  store.MaintopicStore
	guard       *guard.DiscussionGuard
	logger      *slog.Logger
}

var _ DiscussionService = (*DiscussionServiceImpl)(nil)

// NewDiscussionService creates a DiscussionService.
func NewDiscussionService(
	discussions store.DiscussionStore,
	maintopics store.MaintopicStore,
	logger *slog.Logger,
) *DiscussionServiceImpl {
	return &DiscussionServiceImpl{
		discussions: discussions,
		maintopics:  maintopics,
		guard:       guard.NewDiscussionGuard(maintopics),
		logger:      logger.With("component", "discussion_service"),
	}
}

// Create posts a discussion.
func (s *DiscussionServiceImpl) Create(
	ctx context.Context,
	actor Actor,
	maintopicID int64,
	paragraph string,
) (*domain.Discussion, error) {
	p, err := domain.NewParagraph(paragraph)
	if err != nil {
		return nil, err
	}

	if err := s.ensureMaintopicExists(ctx, maintopicID); err != nil {
		return nil, err
	}

	m, err := s.maintopics.GetByID(ctx, maintopicID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve maintopic %d: %w", maintopicID, err)
	}
	if !m.AcceptsDiscussions() {
		return nil, domain.ErrMaintopicClosed
	}

	created, err := s.discussions.Create(ctx, domain.NewDiscussion(p, maintopicID, actor.UserID))
	if err != nil {
		s.logger.Error("failed to create discussion",
			"maintopic_id", maintopicID,
			"user_id", actor.UserID,
			redact.ErrorAttr(err))
		return nil, NewServiceError("discussion", "create", err)
	}

	s.logger.Info("discussion created",
		"discussion_id", created.ID,
		"maintopic_id", maintopicID,
		"user_id", actor.UserID)
	return created, nil
}

// Get retrieves a discussion by ID.
func (s *DiscussionServiceImpl) Get(ctx context.Context, id int64) (*domain.Discussion, error) {
	d, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve discussion %d: %w", id, err)
	}
	return d, nil
}

// List returns a page of all discussions.
func (s *DiscussionServiceImpl) List(
	ctx context.Context,
	page store.Page,
) (store.PageResult[*domain.Discussion], error) {
	result, err := s.discussions.List(ctx, page)
	if err != nil {
		s.logger.Error("failed to list discussions", redact.ErrorAttr(err))
		return store.PageResult[*domain.Discussion]{}, NewServiceError("discussion", "list", err)
	}
	return result, nil
}

// ListByMaintopic returns a page of one maintopic's discussions.
func (s *DiscussionServiceImpl) ListByMaintopic(
	ctx context.Context,
	maintopicID int64,
	page store.Page,
) (store.PageResult[*domain.Discussion], error) {
	if err := s.ensureMaintopicExists(ctx, maintopicID); err != nil {
		return store.PageResult[*domain.Discussion]{}, err
	}

	result, err := s.discussions.ListByMaintopic(ctx, maintopicID, page)
	if err != nil {
		s.logger.Error("failed to list discussions",
			"maintopic_id", maintopicID,
			redact.ErrorAttr(err))
		return store.PageResult[*domain.Discussion]{}, NewServiceError("discussion", "list", err)
	}
	return result, nil
}

func (s *DiscussionServiceImpl) ensureMaintopicExists(ctx context.Context, maintopicID int64) error {
	exists, err := s.guard.IsDuplicateDiscussionExists(ctx, maintopicID)
	if err != nil {
		s.logger.Error("failed to check maintopic existence",
			"maintopic_id", maintopicID,
			redact.ErrorAttr(err))
		return NewServiceError("discussion", "check_maintopic", err)
	}
	if !exists {
		return domain.NewNotFoundError("maintopic")
	}
	return nil
}
