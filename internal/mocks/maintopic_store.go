package mocks

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MaintopicStore is a testify mock of store.MaintopicStore.
type MaintopicStore struct {
	mock.Mock
}

var _ store.MaintopicStore = (*MaintopicStore)(nil)

// ExistsByID mocks store.MaintopicStore.ExistsByID.
func (m *MaintopicStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// GetByID mocks store.MaintopicStore.GetByID.
func (m *MaintopicStore) GetByID(ctx context.Context, id int64) (*domain.Maintopic, error) {
	args := m.Called(ctx, id)
	if mt, ok := args.Get(0).(*domain.Maintopic); ok {
		return mt, args.Error(1)
	}
	return nil, args.Error(1)
}

// List mocks store.MaintopicStore.List.
func (m *MaintopicStore) List(ctx context.Context, page store.Page) (store.PageResult[*domain.Maintopic], error) {
	args := m.Called(ctx, page)
	if r, ok := args.Get(0).(store.PageResult[*domain.Maintopic]); ok {
		return r, args.Error(1)
	}
	return store.PageResult[*domain.Maintopic]{}, args.Error(1)
}

// Create mocks store.MaintopicStore.Create.
func (m *MaintopicStore) Create(ctx context.Context, mt *domain.Maintopic) (*domain.Maintopic, error) {
	args := m.Called(ctx, mt)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Maintopic) *domain.Maintopic); ok {
		return fn(ctx, mt), args.Error(1)
	}
	if out, ok := args.Get(0).(*domain.Maintopic); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update mocks store.MaintopicStore.Update.
func (m *MaintopicStore) Update(ctx context.Context, mt *domain.Maintopic) (*domain.Maintopic, error) {
	args := m.Called(ctx, mt)
	if out, ok := args.Get(0).(*domain.Maintopic); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete mocks store.MaintopicStore.Delete.
func (m *MaintopicStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
