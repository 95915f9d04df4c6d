package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/service"
	"github.com/phrazzld/forum-api/internal/service/auth"
	"github.com/phrazzld/forum-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "nil error", err: nil, wantStatus: http.StatusInternalServerError},
		{name: "validation error", err: domain.ErrTitleLength, wantStatus: http.StatusBadRequest},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("create: %w", domain.ErrParagraphTooShort),
			wantStatus: http.StatusBadRequest,
		},
		{name: "closed maintopic", err: domain.ErrMaintopicClosed, wantStatus: http.StatusConflict},
		{name: "not owner", err: service.ErrNotOwned, wantStatus: http.StatusForbidden},
		{name: "bad credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "duplicate role", err: service.ErrRoleAlreadyExists, wantStatus: http.StatusConflict},
		{
			name:       "masked update wins over wrapped cause",
			err:        domain.NewInternalError(service.UpdateFailedMessage, domain.ErrTitleLength),
			wantStatus: http.StatusInternalServerError,
		},
		{name: "invalid token", err: auth.ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{
			name:       "wrapped expired refresh token",
			err:        fmt.Errorf("refresh: %w", auth.ErrExpiredRefreshToken),
			wantStatus: http.StatusUnauthorized,
		},
		{name: "maintopic not found", err: store.ErrMaintopicNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "not found inside service error",
			err:        service.NewServiceError("discussion", "get", store.ErrDiscussionNotFound),
			wantStatus: http.StatusNotFound,
		},
		{name: "email exists", err: store.ErrEmailExists, wantStatus: http.StatusConflict},
		{name: "invalid entity", err: store.ErrInvalidEntity, wantStatus: http.StatusBadRequest},
		{
			name:       "missing default role on register",
			err:        service.NewServiceError("user", "register", fmt.Errorf("%w: no role of type USER", store.ErrDefaultRoleMissing)),
			wantStatus: http.StatusInternalServerError,
		},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "An unexpected error occurred"},
		{name: "domain message", err: domain.ErrTitleLength, want: "title must be between 3 and 100 characters"},
		{
			name: "masked update",
			err:  domain.NewInternalError(service.UpdateFailedMessage, errors.New("pq: deadlock detected")),
			want: "update failed",
		},
		{name: "not found", err: store.ErrMaintopicNotFound, want: "Maintopic not found"},
		{name: "user not found", err: fmt.Errorf("get: %w", store.ErrUserNotFound), want: "User not found"},
		{name: "generic not found", err: store.ErrNotFound, want: "Resource not found"},
		{name: "login id taken", err: store.ErrLoginIDExists, want: "Login ID already exists"},
		{name: "refresh token", err: auth.ErrExpiredRefreshToken, want: "Invalid refresh token"},
		{name: "access token", err: auth.ErrWrongTokenType, want: "Invalid token"},
		{
			name: "missing default role",
			err:  fmt.Errorf("%w: no role of type USER", store.ErrDefaultRoleMissing),
			want: "An unexpected error occurred",
		},
		{
			name: "internal details hidden",
			err:  errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			want: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "domain type", err: domain.ErrParagraphTooLong, want: "paragraph_too_long"},
		{name: "closed", err: domain.ErrMaintopicClosed, want: "maintopic_closed"},
		{name: "forbidden", err: service.ErrNotOwned, want: "forbidden"},
		{name: "masked update", err: domain.NewInternalError("update failed", nil), want: "internal_error"},
		{name: "store not found", err: store.ErrDiscussionNotFound, want: "discussion_not_found"},
		{name: "email exists", err: store.ErrEmailExists, want: "email_exists"},
		{name: "expired token", err: auth.ErrExpiredToken, want: "token_expired"},
		{name: "invalid token", err: auth.ErrInvalidToken, want: "unauthorized"},
		{name: "generic duplicate", err: store.ErrDuplicate, want: "conflict"},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: "bad_request"},
		{name: "missing default role", err: store.ErrDefaultRoleMissing, want: "internal"},
		{name: "unknown", err: errors.New("boom"), want: "internal"},
		{name: "nil", err: nil, want: "internal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetErrorType(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("validator errors name the json field", func(t *testing.T) {
		err := shared.ValidateRequest(&RegisterRequest{UserName: "u", Email: "not-an-email", Password: "secret123"})
		assert.Equal(t, "Invalid email: invalid email format", SanitizeValidationError(err))
	})

	t.Run("missing field", func(t *testing.T) {
		err := shared.ValidateRequest(&MaintopicRequest{Description: "Plans for the weekly meetup"})
		assert.Equal(t, "Invalid title: required field", SanitizeValidationError(err))
	})

	t.Run("legacy message format", func(t *testing.T) {
		err := errors.New("Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag")
		assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))
	})

	t.Run("other errors", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
	})
}
