package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/service"
	"github.com/phrazzld/forum-api/internal/store"
)

// MockUserService implements service.UserService with overridable functions.
// Unset functions return zero values and Err.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, in service.RegisterInput) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, identifier, password string) (*domain.User, error)
	GetUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	User *domain.User
	Err  error
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService.
func (m *MockUserService) Register(ctx context.Context, in service.RegisterInput) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, in)
	}
	return m.User, m.Err
}

// Authenticate implements service.UserService.
func (m *MockUserService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, identifier, password)
	}
	return m.User, m.Err
}

// GetUser implements service.UserService.
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return m.User, m.Err
}

// MockMaintopicService implements service.MaintopicService.
type MockMaintopicService struct {
	CreateFn func(ctx context.Context, actor service.Actor, title, description string) (*domain.Maintopic, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Maintopic, error)
	ListFn   func(ctx context.Context, page store.Page) (store.PageResult[*domain.Maintopic], error)
	UpdateFn func(
		ctx context.Context,
		actor service.Actor,
		id int64,
		title, description string,
	) (*domain.Maintopic, error)
	CloseFn  func(ctx context.Context, actor service.Actor, id int64) (*domain.Maintopic, error)
	DeleteFn func(ctx context.Context, actor service.Actor, id int64) error

	Maintopic *domain.Maintopic
	Err       error
}

var _ service.MaintopicService = (*MockMaintopicService)(nil)

// Create implements service.MaintopicService.
func (m *MockMaintopicService) Create(
	ctx context.Context,
	actor service.Actor,
	title, description string,
) (*domain.Maintopic, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, actor, title, description)
	}
	return m.Maintopic, m.Err
}

// Get implements service.MaintopicService.
func (m *MockMaintopicService) Get(ctx context.Context, id int64) (*domain.Maintopic, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Maintopic, m.Err
}

// List implements service.MaintopicService.
func (m *MockMaintopicService) List(
	ctx context.Context,
	page store.Page,
) (store.PageResult[*domain.Maintopic], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return store.PageResult[*domain.Maintopic]{Items: []*domain.Maintopic{}, Page: page}, m.Err
}

// Update implements service.MaintopicService.
func (m *MockMaintopicService) Update(
	ctx context.Context,
	actor service.Actor,
	id int64,
	title, description string,
) (*domain.Maintopic, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, actor, id, title, description)
	}
	return m.Maintopic, m.Err
}

// Close implements service.MaintopicService.
func (m *MockMaintopicService) Close(ctx context.Context, actor service.Actor, id int64) (*domain.Maintopic, error) {
	if m.CloseFn != nil {
		return m.CloseFn(ctx, actor, id)
	}
	return m.Maintopic, m.Err
}

// Delete implements service.MaintopicService.
func (m *MockMaintopicService) Delete(ctx context.Context, actor service.Actor, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, actor, id)
	}
	return m.Err
}

// MockDiscussionService implements service.DiscussionService.
type MockDiscussionService struct {
	CreateFn func(
		ctx context.Context,
		actor service.Actor,
		maintopicID int64,
		paragraph string,
	) (*domain.Discussion, error)
	GetFn             func(ctx context.Context, id int64) (*domain.Discussion, error)
	ListFn            func(ctx context.Context, page store.Page) (store.PageResult[*domain.Discussion], error)
	ListByMaintopicFn func(
		ctx context.Context,
		maintopicID int64,
		page store.Page,
	) (store.PageResult[*domain.Discussion], error)

	Discussion *domain.Discussion
	Err        error
}

var _ service.DiscussionService = (*MockDiscussionService)(nil)

// Create implements service.DiscussionService.
func (m *MockDiscussionService) Create(
	ctx context.Context,
	actor service.Actor,
	maintopicID int64,
	paragraph string,
) (*domain.Discussion, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, actor, maintopicID, paragraph)
	}
	return m.Discussion, m.Err
}

// Get implements service.DiscussionService.
func (m *MockDiscussionService) Get(ctx context.Context, id int64) (*domain.Discussion, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Discussion, m.Err
}

// List implements service.DiscussionService.
func (m *MockDiscussionService) List(
	ctx context.Context,
	page store.Page,
) (store.PageResult[*domain.Discussion], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return store.PageResult[*domain.Discussion]{Items: []*domain.Discussion{}, Page: page}, m.Err
}

// ListByMaintopic implements service.DiscussionService.
func (m *MockDiscussionService) ListByMaintopic(
	ctx context.Context,
	maintopicID int64,
	page store.Page,
) (store.PageResult[*domain.Discussion], error) {
	if m.ListByMaintopicFn != nil {
		return m.ListByMaintopicFn(ctx, maintopicID, page)
	}
	return store.PageResult[*domain.Discussion]{Items: []*domain.Discussion{}, Page: page}, m.Err
}

// MockRoleService implements service.RoleService.
type MockRoleService struct {
	CreateFn       func(ctx context.Context, name, roleType string) (*domain.Role, error)
	ListFn         func(ctx context.Context) ([]*domain.Role, error)
	AssignToUserFn func(ctx context.Context, userID uuid.UUID, roleName string) error

	Role  *domain.Role
	Roles []*domain.Role
	Err   error
}

var _ service.RoleService = (*MockRoleService)(nil)

// Create implements service.RoleService.
func (m *MockRoleService) Create(ctx context.Context, name, roleType string) (*domain.Role, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, name, roleType)
	}
	return m.Role, m.Err
}

// List implements service.RoleService.
func (m *MockRoleService) List(ctx context.Context) ([]*domain.Role, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Roles, m.Err
}

// AssignToUser implements service.RoleService.
func (m *MockRoleService) AssignToUser(ctx context.Context, userID uuid.UUID, roleName string) error {
	if m.AssignToUserFn != nil {
		return m.AssignToUserFn(ctx, userID, roleName)
	}
	return m.Err
}
