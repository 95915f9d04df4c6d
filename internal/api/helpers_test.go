package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newJSONRequest builds a request whose body is body marshaled to JSON.
// A string body is sent verbatim.
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withURLParams attaches chi route parameters to req.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// asUser marks req as authenticated by userID with the given role types.
func asUser(req *http.Request, userID uuid.UUID, roles ...domain.RoleType) *http.Request {
	return req.WithContext(shared.WithUser(req.Context(), userID, roles))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func testMaintopic(id int64, owner uuid.UUID) *domain.Maintopic {
	return domain.MaintopicOf(id,
		domain.RestoreTitle("Weekly meetup"),
		domain.RestoreDescription("Plans for the weekly meetup"),
		owner, testTime, testTime, false, false)
}

func testDiscussion(id, maintopicID int64, author uuid.UUID) *domain.Discussion {
	return domain.DiscussionOf(id, domain.RestoreParagraph("hello world"), maintopicID, author,
		testTime, testTime, nil)
}

func testUser(roles ...domain.RoleType) *domain.User {
	return domain.UserOf(uuid.New(),
		domain.RestoreUserName("forum user"),
		domain.RestoreEmail("user@example.com"),
		"$2a$10$hash",
		domain.RestoreLoginID("forumuser"),
		true, false, roles, testTime, testTime)
}
