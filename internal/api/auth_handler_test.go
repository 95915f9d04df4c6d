package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/mocks"
	"github.com/phrazzld/forum-api/internal/service"
	"github.com/phrazzld/forum-api/internal/service/auth"
	"github.com/phrazzld/forum-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuthConfig = &config.AuthConfig{
	TokenLifetimeMinutes:        60,
	RefreshTokenLifetimeMinutes: 1440,
}

func newTestAuthHandler(users service.UserService, jwtService auth.JWTService) *AuthHandler {
	return NewAuthHandler(users, jwtService, testAuthConfig, discardLogger()).
		WithTimeFunc(func() time.Time { return testTime })
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	user := testUser(domain.RoleTypeUser)

	tests := []struct {
		name          string
		body          interface{}
		registerErr   error
		tokenErr      error
		wantStatus    int
		wantErrorType string
		wantMessage   string
	}{
		{
			name: "success",
			body: map[string]string{
				"user_name": "forum user",
				"email":     "user@example.com",
				"password":  "password123",
				"login_id":  "forumuser",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:          "malformed json",
			body:          `{"email":`,
			wantStatus:    http.StatusBadRequest,
			wantErrorType: "invalid_request_body",
			wantMessage:   "Invalid request format",
		},
		{
			name:          "missing user name",
			body:          map[string]string{"email": "user@example.com", "password": "password123"},
			wantStatus:    http.StatusBadRequest,
			wantErrorType: "validation_error",
			wantMessage:   "Invalid user_name: required field",
		},
		{
			name: "domain validation failure",
			body: map[string]string{
				"user_name": "forum user",
				"email":     "user@example.com",
				"password":  "short",
			},
			registerErr:   domain.ErrPasswordLength,
			wantStatus:    http.StatusBadRequest,
			wantErrorType: "weak_password",
		},
		{
			name: "email taken",
			body: map[string]string{
				"user_name": "forum user",
				"email":     "user@example.com",
				"password":  "password123",
			},
			registerErr:   service.NewServiceError("user", "register", store.ErrEmailExists),
			wantStatus:    http.StatusConflict,
			wantErrorType: "email_exists",
			wantMessage:   "Email already exists",
		},
		{
			name: "store failure",
			body: map[string]string{
				"user_name": "forum user",
				"email":     "user@example.com",
				"password":  "password123",
			},
			registerErr:   errors.New("connection reset"),
			wantStatus:    http.StatusInternalServerError,
			wantErrorType: "internal",
			wantMessage:   "Failed to create user",
		},
		{
			name: "token failure",
			body: map[string]string{
				"user_name": "forum user",
				"email":     "user@example.com",
				"password":  "password123",
			},
			tokenErr:    errors.New("signing failed"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to generate authentication token",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got service.RegisterInput
			users := &mocks.MockUserService{
				RegisterFn: func(_ context.Context, in service.RegisterInput) (*domain.User, error) {
					got = in
					if tc.registerErr != nil {
						return nil, tc.registerErr
					}
					return user, nil
				},
			}
			jwtService := &mocks.MockJWTService{Token: "access", RefreshToken: "refresh", Err: tc.tokenErr}
			h := newTestAuthHandler(users, jwtService)

			rr := httptest.NewRecorder()
			h.Register(rr, newJSONRequest(t, http.MethodPost, "/api/auth/register", tc.body))

			require.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
			if tc.wantStatus == http.StatusCreated {
				resp := decodeBody[AuthResponse](t, rr)
				assert.Equal(t, user.ID, resp.UserID)
				assert.Equal(t, "access", resp.AccessToken)
				assert.Equal(t, "refresh", resp.RefreshToken)
				assert.Equal(t, "2025-03-01T10:30:00Z", resp.ExpiresAt)
				assert.Equal(t, service.RegisterInput{
					UserName: "forum user",
					Email:    "user@example.com",
					Password: "password123",
					LoginID:  "forumuser",
				}, got)
				return
			}

			body := decodeError(t, rr)
			if tc.wantErrorType != "" {
				assert.Equal(t, tc.wantErrorType, body.Type)
			}
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, body.Error)
			}
		})
	}
}

func TestAuthHandler_RegisterPassesRolesToToken(t *testing.T) {
	user := testUser(domain.RoleTypeUser)
	var tokenRoles []domain.RoleType
	jwtService := &mocks.MockJWTService{
		GenerateTokenFn: func(_ context.Context, userID uuid.UUID, roles []domain.RoleType) (string, error) {
			assert.Equal(t, user.ID, userID)
			tokenRoles = roles
			return "access", nil
		},
		RefreshToken: "refresh",
	}
	h := newTestAuthHandler(&mocks.MockUserService{User: user}, jwtService)

	rr := httptest.NewRecorder()
	h.Register(rr, newJSONRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"user_name": "forum user", "email": "user@example.com", "password": "password123",
	}))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, []domain.RoleType{domain.RoleTypeUser}, tokenRoles)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	user := testUser(domain.RoleTypeUser, domain.RoleTypeAdmin)

	tests := []struct {
		name           string
		body           interface{}
		authErr        error
		wantStatus     int
		wantIdentifier string
		wantMessage    string
	}{
		{
			name:           "by email",
			body:           map[string]string{"email": "user@example.com", "password": "password123"},
			wantStatus:     http.StatusOK,
			wantIdentifier: "user@example.com",
		},
		{
			name:           "by login id",
			body:           map[string]string{"login_id": "forumuser", "password": "password123"},
			wantStatus:     http.StatusOK,
			wantIdentifier: "forumuser",
		},
		{
			name:        "no identifier",
			body:        map[string]string{"password": "password123"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email: required field",
		},
		{
			name:        "no password",
			body:        map[string]string{"email": "user@example.com"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid password: required field",
		},
		{
			name:           "bad credentials",
			body:           map[string]string{"email": "user@example.com", "password": "wrong"},
			authErr:        service.ErrInvalidCredentials,
			wantStatus:     http.StatusUnauthorized,
			wantIdentifier: "user@example.com",
			wantMessage:    "invalid credentials",
		},
		{
			name:           "store failure",
			body:           map[string]string{"email": "user@example.com", "password": "password123"},
			authErr:        service.NewServiceError("user", "authenticate", errors.New("timeout")),
			wantStatus:     http.StatusInternalServerError,
			wantIdentifier: "user@example.com",
			wantMessage:    "Failed to authenticate user",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotIdentifier string
			users := &mocks.MockUserService{
				AuthenticateFn: func(_ context.Context, identifier, _ string) (*domain.User, error) {
					gotIdentifier = identifier
					if tc.authErr != nil {
						return nil, tc.authErr
					}
					return user, nil
				},
			}
			h := newTestAuthHandler(users, &mocks.MockJWTService{Token: "access", RefreshToken: "refresh"})

			rr := httptest.NewRecorder()
			h.Login(rr, newJSONRequest(t, http.MethodPost, "/api/auth/login", tc.body))

			require.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
			assert.Equal(t, tc.wantIdentifier, gotIdentifier)
			if tc.wantStatus == http.StatusOK {
				resp := decodeBody[AuthResponse](t, rr)
				assert.Equal(t, user.ID, resp.UserID)
				assert.Equal(t, "access", resp.AccessToken)
				return
			}
			assert.Equal(t, tc.wantMessage, decodeError(t, rr).Error)
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Parallel()

	active := testUser(domain.RoleTypeUser)
	disabled := testUser(domain.RoleTypeUser)
	disabled.IsActive = false

	tests := []struct {
		name        string
		body        interface{}
		validateErr error
		user        *domain.User
		getUserErr  error
		wantStatus  int
		wantType    string
	}{
		{
			name:       "valid refresh token",
			body:       map[string]string{"refresh_token": "refresh-token"},
			user:       active,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing refresh token",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
			wantType:   "validation_error",
		},
		{
			name:        "expired refresh token",
			body:        map[string]string{"refresh_token": "old"},
			validateErr: auth.ErrExpiredRefreshToken,
			wantStatus:  http.StatusUnauthorized,
			wantType:    "token_expired",
		},
		{
			name:        "access token used for refresh",
			body:        map[string]string{"refresh_token": "access-token"},
			validateErr: auth.ErrWrongTokenType,
			wantStatus:  http.StatusUnauthorized,
			wantType:    "unauthorized",
		},
		{
			name:       "user deleted since login",
			body:       map[string]string{"refresh_token": "refresh-token"},
			getUserErr: store.ErrUserNotFound,
			wantStatus: http.StatusUnauthorized,
			wantType:   "invalid_refresh_token",
		},
		{
			name:       "user disabled since login",
			body:       map[string]string{"refresh_token": "refresh-token"},
			user:       disabled,
			wantStatus: http.StatusUnauthorized,
			wantType:   "invalid_refresh_token",
		},
		{
			name:       "user lookup failure",
			body:       map[string]string{"refresh_token": "refresh-token"},
			getUserErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantType:   "internal",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userID := uuid.New()
			jwtService := &mocks.MockJWTService{
				ValidateRefreshTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
					if tc.validateErr != nil {
						return nil, tc.validateErr
					}
					return &auth.Claims{UserID: userID, TokenType: auth.TokenTypeRefresh}, nil
				},
				Token:        "new-access",
				RefreshToken: "new-refresh",
			}
			users := &mocks.MockUserService{
				GetUserFn: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
					assert.Equal(t, userID, id)
					return tc.user, tc.getUserErr
				},
			}
			h := newTestAuthHandler(users, jwtService)

			rr := httptest.NewRecorder()
			h.RefreshToken(rr, newJSONRequest(t, http.MethodPost, "/api/auth/refresh", tc.body))

			require.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
			if tc.wantStatus == http.StatusOK {
				resp := decodeBody[RefreshTokenResponse](t, rr)
				assert.Equal(t, "new-access", resp.AccessToken)
				assert.Equal(t, "new-refresh", resp.RefreshToken)
				assert.Equal(t, "2025-03-01T10:30:00Z", resp.ExpiresAt)
				return
			}
			assert.Equal(t, tc.wantType, decodeError(t, rr).Type)
		})
	}
}

func TestUserHandler_Me(t *testing.T) {
	user := testUser(domain.RoleTypeUser, domain.RoleTypeAdmin)

	t.Run("returns profile without credentials", func(t *testing.T) {
		h := NewUserHandler(&mocks.MockUserService{User: user}, discardLogger())
		rr := httptest.NewRecorder()

		h.Me(rr, asUser(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), user.ID))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[UserResponse](t, rr)
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "forum user", resp.UserName)
		assert.Equal(t, "user@example.com", resp.Email)
		assert.Equal(t, "forumuser", resp.LoginID)
		assert.Equal(t, []string{"USER", "ADMIN"}, resp.Roles)
		assert.NotContains(t, rr.Body.String(), "hash")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewUserHandler(&mocks.MockUserService{User: user}, discardLogger())
		rr := httptest.NewRecorder()

		h.Me(rr, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("user gone", func(t *testing.T) {
		h := NewUserHandler(&mocks.MockUserService{Err: store.ErrUserNotFound}, discardLogger())
		rr := httptest.NewRecorder()

		h.Me(rr, asUser(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), uuid.New()))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "User not found", decodeError(t, rr).Error)
	})
}

func TestNewAuthHandler_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() { NewAuthHandler(nil, &mocks.MockJWTService{}, testAuthConfig, nil) })
	assert.Panics(t, func() { NewUserHandler(nil, nil) })
}
