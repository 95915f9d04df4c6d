package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/forum-api/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`              // Client-safe message
	Type    string `json:"type,omitempty"`     // Machine-readable code, e.g. "maintopic_closed"
	Code    int    `json:"-"`                  // HTTP status; logged, not serialized
	TraceID string `json:"trace_id,omitempty"` // Correlates the response with server logs
}

// ResponseOption customizes error response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds the settings collected from ResponseOption values.
type responseOptions struct {
	elevateLogLevel bool
	errorType       string
}

// WithElevatedLogLevel raises 4xx errors to WARN instead of DEBUG.
// Use for operational issues such as repeated auth failures.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithErrorType sets the machine-readable "type" field of the error body.
func WithErrorType(errorType string) ResponseOption {
	return func(opts *responseOptions) {
		opts.errorType = errorType
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
// The trace ID from the request context is included when present.
func RespondWithError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	opts ...ResponseOption,
) {
	responseOpts := applyOptions(opts)

	// Trace ID is empty when the trace middleware did not run
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"type", responseOpts.errorType,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Type:    responseOpts.errorType,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a JSON error response carrying only userMessage
// and logs the redacted err.
//
// Log levels: 5xx at ERROR, 429 at WARN, other 4xx at DEBUG unless
// WithElevatedLogLevel raises them to WARN.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	responseOpts := applyOptions(opts)
	traceID := GetTraceID(r.Context())

	// Common request context for the log entry
	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if responseOpts.errorType != "" {
		logAttrs = append(logAttrs, slog.String("error_code", responseOpts.errorType))
	}
	// The raw error only reaches the logs, and only after redaction
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	// Pick the log level from the status code and options
	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	// Send only the sanitized message to the client
	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Type:    responseOpts.errorType,
		Code:    status,
		TraceID: traceID,
	})
}

// applyOptions folds opts over the zero-value defaults.
func applyOptions(opts []ResponseOption) responseOptions {
	var responseOpts responseOptions
	for _, opt := range opts {
		opt(&responseOpts)
	}
	return responseOpts
}
