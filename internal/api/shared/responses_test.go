package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDefaultLogger swaps the default slog logger for one writing to a buffer.
func captureDefaultLogger(t *testing.T) *strings.Builder {
	t.Helper()
	var logBuf strings.Builder
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &logBuf
}

func requestWithTrace(traceID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/maintopics", nil)
	if traceID == "" {
		return req
	}
	return req.WithContext(context.WithValue(req.Context(), TraceIDKey, traceID))
}

func TestRespondWithJSON(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondWithJSON(w, requestWithTrace(""), http.StatusCreated, map[string]interface{}{"id": 7})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"id":7}`, w.Body.String())
	})

	t.Run("nil", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondWithJSON(w, requestWithTrace(""), http.StatusOK, nil)
		assert.Equal(t, "null\n", w.Body.String())
	})
}

type unencodable struct {
	Circular *unencodable
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	logBuf := captureDefaultLogger(t)
	data := &unencodable{}
	data.Circular = data

	w := httptest.NewRecorder()
	RespondWithJSON(w, requestWithTrace(""), http.StatusOK, data)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name     string
		traceID  string
		opts     []ResponseOption
		wantBody ErrorResponse
	}{
		{
			name:     "with trace id",
			traceID:  "trace-1",
			wantBody: ErrorResponse{Error: "Invalid request", TraceID: "trace-1"},
		},
		{
			name:     "without trace id",
			wantBody: ErrorResponse{Error: "Invalid request"},
		},
		{
			name:     "with error type",
			traceID:  "trace-2",
			opts:     []ResponseOption{WithErrorType("invalid_request_body")},
			wantBody: ErrorResponse{Error: "Invalid request", Type: "invalid_request_body", TraceID: "trace-2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithError(w, requestWithTrace(tc.traceID), http.StatusBadRequest, "Invalid request", tc.opts...)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tc.wantBody, got)
		})
	}
}

func TestErrorResponseOmitsEmptyFields(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, requestWithTrace(""), http.StatusUnauthorized, "Unauthorized")

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, map[string]interface{}{"error": "Unauthorized"}, raw)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		err           error
		opts          []ResponseOption
		wantLevel     string
		wantErrorCode string
	}{
		{
			name:      "server error logs at error",
			status:    http.StatusInternalServerError,
			err:       errors.New("database connection failed"),
			wantLevel: "level=ERROR",
		},
		{
			name:      "client error logs at debug",
			status:    http.StatusBadRequest,
			err:       errors.New("invalid input"),
			wantLevel: "level=DEBUG",
		},
		{
			name:      "elevated client error logs at warn",
			status:    http.StatusForbidden,
			err:       errors.New("not owner"),
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "level=WARN",
		},
		{
			name:      "rate limiting logs at warn",
			status:    http.StatusTooManyRequests,
			err:       errors.New("rate limit exceeded"),
			wantLevel: "level=WARN",
		},
		{
			name:          "error type is logged and returned",
			status:        http.StatusConflict,
			err:           errors.New("duplicate"),
			opts:          []ResponseOption{WithErrorType("maintopic_closed")},
			wantLevel:     "level=DEBUG",
			wantErrorCode: "maintopic_closed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logBuf := captureDefaultLogger(t)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, requestWithTrace("trace-x"), tc.status, "Safe message", tc.err, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, "Safe message", got.Error)
			assert.Equal(t, "trace-x", got.TraceID)
			assert.Equal(t, tc.wantErrorCode, got.Type)

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, tc.wantLevel)
			assert.Contains(t, logOutput, "trace_id=trace-x")
			assert.Contains(t, logOutput, "error_type=")
			if tc.wantErrorCode != "" {
				assert.Contains(t, logOutput, "error_code="+tc.wantErrorCode)
			}
		})
	}
}

func TestRespondWithErrorAndLogRedactsError(t *testing.T) {
	logBuf := captureDefaultLogger(t)
	w := httptest.NewRecorder()
	err := errors.New(`query failed: SELECT * FROM users WHERE email = 'alice@example.com'`)

	RespondWithErrorAndLog(w, requestWithTrace(""), http.StatusInternalServerError, "An unexpected error occurred", err)

	assert.NotContains(t, logBuf.String(), "alice@example.com")
	assert.NotContains(t, w.Body.String(), "SELECT")
}

func TestResponseOptions(t *testing.T) {
	opts := applyOptions([]ResponseOption{WithElevatedLogLevel(), WithErrorType("forbidden")})
	assert.True(t, opts.elevateLogLevel)
	assert.Equal(t, "forbidden", opts.errorType)
}
