package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/domain/guard"
	"github.com/phrazzld/forum-api/internal/redact"
	"github.com/phrazzld/forum-api/internal/service/auth"
	"github.com/phrazzld/forum-api/internal/store"
)

// RegisterInput carries the raw registration fields.
type RegisterInput struct {
	UserName string
	Email    string
	Password string
	LoginID  string // optional
}

// UserService provides registration, authentication and user lookup.
type UserService interface {
	// Register validates the input, checks email uniqueness, hashes the
	// password and stores the user with the USER role.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Authenticate resolves identifier as an email address when it contains
	// "@" and as a login id otherwise, then verifies the password.
	// Every failure other than a store error is ErrInvalidCredentials.
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	emailGuard *guard.EmailGuard
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore:  userStore,
		emailGuard: guard.NewEmailGuard(userStore),
		hasher:     hasher,
		verifier:   verifier,
		logger:     logger.With("component", "user_service"),
	}
}

// Register creates a new account.
func (s *UserServiceImpl) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	user, err := domain.NewUser(in.UserName, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	if in.LoginID != "" {
		loginID, err := domain.NewLoginID(in.LoginID)
		if err != nil {
			return nil, err
		}
		user = user.WithLoginID(loginID)
	}

	if err := s.emailGuard.EnsureEmailIsUnique(ctx, user.Email); err != nil {
		if errors.Is(err, guard.ErrEmailAlreadyExists) {
			s.logger.Debug("registration rejected: email already exists")
			return nil, err
		}
		s.logger.Error("failed to check email uniqueness", redact.ErrorAttr(err))
		return nil, NewServiceError("user", "register", err)
	}

	hash, err := s.hasher.Hash(user.Password.Value())
	if err != nil {
		s.logger.Error("failed to hash password", redact.ErrorAttr(err))
		return nil, NewServiceError("user", "register", err)
	}

	user = user.WithHashedPassword(hash).WithRoles(domain.RoleTypeUser)

	created, err := s.userStore.Create(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			// lost a race with a concurrent registration
			return nil, guard.ErrEmailAlreadyExists
		case errors.Is(err, store.ErrLoginIDExists):
			return nil, domain.NewConflictError("login_id_already_exists", "login id already exists")
		}
		s.logger.Error("failed to save user", redact.ErrorAttr(err))
		return nil, NewServiceError("user", "register", err)
	}

	s.logger.Info("user registered", "user_id", created.ID)
	return created, nil
}

// Authenticate verifies credentials and returns the signed-in user.
func (s *UserServiceImpl) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.userStore.GetByEmail(ctx, identifier)
	} else {
		user, err = s.userStore.GetByLoginID(ctx, identifier)
	}
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("authentication failed: unknown account")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to load user for authentication", redact.ErrorAttr(err))
		return nil, NewServiceError("user", "authenticate", err)
	}

	if !user.CanSignIn() {
		s.logger.Debug("authentication failed: account disabled", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Error("password comparison failed", "user_id", user.ID, redact.ErrorAttr(err))
		}
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user", "user_id", userID, redact.ErrorAttr(err))
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}
