package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// RoleStore is a testify mock of store.RoleStore.
type RoleStore struct {
	mock.Mock
}

var _ store.RoleStore = (*RoleStore)(nil)

// ExistsByName mocks store.RoleStore.ExistsByName.
func (m *RoleStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// GetByName mocks store.RoleStore.GetByName.
func (m *RoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if r, ok := args.Get(0).(*domain.Role); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// List mocks store.RoleStore.List.
func (m *RoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).([]*domain.Role); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create mocks store.RoleStore.Create.
func (m *RoleStore) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	args := m.Called(ctx, role)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Role) *domain.Role); ok {
		return fn(ctx, role), args.Error(1)
	}
	if r, ok := args.Get(0).(*domain.Role); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListForUser mocks store.RoleStore.ListForUser.
func (m *RoleStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Role, error) {
	args := m.Called(ctx, userID)
	if r, ok := args.Get(0).([]*domain.Role); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
