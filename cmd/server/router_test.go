package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	apiMiddleware "github.com/phrazzld/forum-api/internal/api/middleware"
	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/mocks"
	"github.com/phrazzld/forum-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication builds an application around mocks. Tokens are
// "admin" or "user"; anything else is rejected as invalid.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	adminID, userID := uuid.New(), uuid.New()
	jwtSvc := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			switch token {
			case "admin":
				return &auth.Claims{UserID: adminID, Roles: []domain.RoleType{domain.RoleTypeAdmin}}, nil
			case "user":
				return &auth.Claims{UserID: userID, Roles: []domain.RoleType{domain.RoleTypeUser}}, nil
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}

	now := time.Now()
	maintopic := domain.MaintopicOf(1,
		domain.RestoreTitle("Weekly meetup"),
		domain.RestoreDescription("Plans for the meetup"),
		userID, now, now, false, false)

	return &application{
		config: &config.Config{
			Auth: config.AuthConfig{TokenLifetimeMinutes: 60, RefreshTokenLifetimeMinutes: 1440},
			CORS: config.CORSConfig{AllowedOrigins: []string{"https://forum.example.com"}},
		},
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		jwtService:        jwtSvc,
		userService:       &mocks.MockUserService{},
		maintopicService:  &mocks.MockMaintopicService{Maintopic: maintopic},
		discussionService: &mocks.MockDiscussionService{},
		roleService:       &mocks.MockRoleService{},
	}
}

func TestSetupRouter(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "public maintopic list", method: http.MethodGet, path: "/api/maintopics", wantStatus: http.StatusOK},
		{name: "public discussion list", method: http.MethodGet, path: "/api/discussions", wantStatus: http.StatusOK},
		{
			name:       "create maintopic without token",
			method:     http.MethodPost,
			path:       "/api/maintopics",
			body:       `{"title":"Weekly meetup","description":"Plans for the meetup"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "create maintopic with bad token",
			method:     http.MethodPost,
			path:       "/api/maintopics",
			token:      "forged",
			body:       `{"title":"Weekly meetup","description":"Plans for the meetup"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "create maintopic as user",
			method:     http.MethodPost,
			path:       "/api/maintopics",
			token:      "user",
			body:       `{"title":"Weekly meetup","description":"Plans for the meetup"}`,
			wantStatus: http.StatusCreated,
		},
		{name: "roles as user", method: http.MethodGet, path: "/api/roles", token: "user", wantStatus: http.StatusForbidden},
		{name: "roles as admin", method: http.MethodGet, path: "/api/roles", token: "admin", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound},
		{
			name:       "wrong method",
			method:     http.MethodPatch,
			path:       "/api/maintopics",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get(apiMiddleware.TraceIDHeader))
		})
	}
}

func TestSetupRouter_NotFoundIsJSON(t *testing.T) {
	router := newTestApplication(t).setupRouter()
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["type"])
}

func TestSetupRouter_CORSPreflight(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/maintopics", nil)
	req.Header.Set("Origin", "https://forum.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, "https://forum.example.com", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/maintopics", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
