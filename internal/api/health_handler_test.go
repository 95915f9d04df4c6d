package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		wantBody   HealthResponse
	}{
		{
			name:       "database reachable",
			db:         fakePinger{},
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ok", Database: "ok"},
		},
		{
			name:       "database unreachable",
			db:         fakePinger{err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   HealthResponse{Status: "unavailable", Database: "unreachable"},
		},
		{
			name:       "no database",
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ok", Database: "skipped"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, logBuf := logger.GetTestLogger(t)
			h := NewHealthHandler(tc.db, log)
			rr := httptest.NewRecorder()

			h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantBody, decodeBody[HealthResponse](t, rr))
			if tc.wantStatus != http.StatusOK {
				logger.AssertLogContains(t, logBuf, "database health check failed")
			}
		})
	}
}
