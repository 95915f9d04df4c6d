package mocks

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// DiscussionStore is a testify mock of store.DiscussionStore.
type DiscussionStore struct {
	mock.Mock
}

var _ store.DiscussionStore = (*DiscussionStore)(nil)

// Create mocks store.DiscussionStore.Create.
func (m *DiscussionStore) Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
	args := m.Called(ctx, d)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Discussion) *domain.Discussion); ok {
		return fn(ctx, d), args.Error(1)
	}
	if out, ok := args.Get(0).(*domain.Discussion); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID mocks store.DiscussionStore.GetByID.
func (m *DiscussionStore) GetByID(ctx context.Context, id int64) (*domain.Discussion, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*domain.Discussion); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

// List mocks store.DiscussionStore.List.
func (m *DiscussionStore) List(ctx context.Context, page store.Page) (store.PageResult[*domain.Discussion], error) {
	args := m.Called(ctx, page)
	if r, ok := args.Get(0).(store.PageResult[*domain.Discussion]); ok {
		return r, args.Error(1)
	}
	return store.PageResult[*domain.Discussion]{}, args.Error(1)
}

// ListByMaintopic mocks store.DiscussionStore.ListByMaintopic.
func (m *DiscussionStore) ListByMaintopic(
	ctx context.Context,
	maintopicID int64,
	page store.Page,
) (store.PageResult[*domain.Discussion], error) {
	args := m.Called(ctx, maintopicID, page)
	if r, ok := args.Get(0).(store.PageResult[*domain.Discussion]); ok {
		return r, args.Error(1)
	}
	return store.PageResult[*domain.Discussion]{}, args.Error(1)
}
