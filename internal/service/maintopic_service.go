package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/redact"
	"github.com/phrazzld/forum-api/internal/store"
)

// MaintopicService manages discussion topics.
type MaintopicService interface {
	// Create validates title and description and stores a maintopic owned by the actor.
	Create(ctx context.Context, actor Actor, title, description string) (*domain.Maintopic, error)

	// Get retrieves a live maintopic.
	Get(ctx context.Context, id int64) (*domain.Maintopic, error)

	// List returns one page of live maintopics, newest first.
	List(ctx context.Context, page store.Page) (store.PageResult[*domain.Maintopic], error)

	// Update replaces title and description. Lookup and ownership failures
	// are returned as is; every later failure (validation, no-op update,
	// persistence) is reported as an internal "update failed" error whose
	// cause is logged but never returned to the client.
	Update(ctx context.Context, actor Actor, id int64, title, description string) (*domain.Maintopic, error)

	// Close stops a maintopic from accepting discussions. Closing twice is a no-op.
	Close(ctx context.Context, actor Actor, id int64) (*domain.Maintopic, error)

	// Delete soft-deletes a maintopic.
	Delete(ctx context.Context, actor Actor, id int64) error
}

// MaintopicServiceImpl implements MaintopicService.
type MaintopicServiceImpl struct {
	maintopics store.MaintopicStore
	logger     *slog.Logger
}

var _ MaintopicService = (*MaintopicServiceImpl)(nil)

// NewMaintopicService creates a MaintopicService.
func NewMaintopicService(maintopics store.MaintopicStore, logger *slog.Logger) *MaintopicServiceImpl {
	return &MaintopicServiceImpl{
		maintopics: maintopics,
		logger:     logger.With("component", "maintopic_service"),
	}
}

// Create stores a new maintopic.
func (s *MaintopicServiceImpl) Create(
	ctx context.Context,
	actor Actor,
	title, description string,
) (*domain.Maintopic, error) {
	t, err := domain.NewTitle(title)
	if err != nil {
		return nil, err
	}
	d, err := domain.NewDescription(description)
	if err != nil {
		return nil, err
	}

	created, err := s.maintopics.Create(ctx, domain.NewMaintopic(t, d, actor.UserID))
	if err != nil {
		s.logger.Error("failed to create maintopic",
			"user_id", actor.UserID,
			redact.ErrorAttr(err))
		return nil, NewServiceError("maintopic", "create", err)
	}

	s.logger.Info("maintopic created",
		"maintopic_id", created.ID,
		"user_id", actor.UserID)
	return created, nil
}

// Get retrieves a maintopic by ID.
func (s *MaintopicServiceImpl) Get(ctx context.Context, id int64) (*domain.Maintopic, error) {
	m, err := s.maintopics.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve maintopic %d: %w", id, err)
	}
	return m, nil
}

// List returns a page of maintopics.
func (s *MaintopicServiceImpl) List(
	ctx context.Context,
	page store.Page,
) (store.PageResult[*domain.Maintopic], error) {
	result, err := s.maintopics.List(ctx, page)
	if err != nil {
		s.logger.Error("failed to list maintopics", redact.ErrorAttr(err))
		return store.PageResult[*domain.Maintopic]{}, NewServiceError("maintopic", "list", err)
	}
	return result, nil
}

// Update changes title and description.
func (s *MaintopicServiceImpl) Update(
	ctx context.Context,
	actor Actor,
	id int64,
	title, description string,
) (*domain.Maintopic, error) {
	current, err := s.loadForModification(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.applyUpdate(ctx, current, title, description)
	if err != nil {
		s.logger.Error("maintopic update failed",
			"maintopic_id", id,
			"user_id", actor.UserID,
			redact.ErrorAttr(err))
		return nil, domain.NewInternalError(UpdateFailedMessage, err)
	}

	s.logger.Info("maintopic updated", "maintopic_id", id, "user_id", actor.UserID)
	return updated, nil
}

func (s *MaintopicServiceImpl) applyUpdate(
	ctx context.Context,
	current *domain.Maintopic,
	title, description string,
) (*domain.Maintopic, error) {
	t, err := domain.NewTitle(title)
	if err != nil {
		return nil, err
	}
	d, err := domain.NewDescription(description)
	if err != nil {
		return nil, err
	}
	next, err := current.Update(t, d)
	if err != nil {
		return nil, err
	}
	return s.maintopics.Update(ctx, next)
}

// Close marks a maintopic closed.
func (s *MaintopicServiceImpl) Close(ctx context.Context, actor Actor, id int64) (*domain.Maintopic, error) {
	current, err := s.loadForModification(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if current.IsClosed {
		return current, nil
	}

	closed, err := s.maintopics.Update(ctx, current.Close())
	if err != nil {
		s.logger.Error("failed to close maintopic", "maintopic_id", id, redact.ErrorAttr(err))
		return nil, NewServiceError("maintopic", "close", err)
	}

	s.logger.Info("maintopic closed", "maintopic_id", id, "user_id", actor.UserID)
	return closed, nil
}

// Delete soft-deletes a maintopic.
func (s *MaintopicServiceImpl) Delete(ctx context.Context, actor Actor, id int64) error {
	if _, err := s.loadForModification(ctx, actor, id); err != nil {
		return err
	}

	if err := s.maintopics.Delete(ctx, id); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete maintopic", "maintopic_id", id, redact.ErrorAttr(err))
		}
		return NewServiceError("maintopic", "delete", err)
	}

	s.logger.Info("maintopic deleted", "maintopic_id", id, "user_id", actor.UserID)
	return nil
}

// loadForModification fetches a maintopic and checks the actor may change it.
func (s *MaintopicServiceImpl) loadForModification(
	ctx context.Context,
	actor Actor,
	id int64,
) (*domain.Maintopic, error) {
	current, err := s.maintopics.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to load maintopic", "maintopic_id", id, redact.ErrorAttr(err))
		}
		return nil, fmt.Errorf("failed to retrieve maintopic %d: %w", id, err)
	}
	if !actor.canModify(current.OwnerID) {
		s.logger.Debug("maintopic modification denied",
			"maintopic_id", id,
			"user_id", actor.UserID)
		return nil, ErrNotOwned
	}
	return current, nil
}
