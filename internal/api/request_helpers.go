package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/service"
	"github.com/phrazzld/forum-api/internal/store"
)

// Query parameters for paginated listings.
const (
	pageQueryParam = "page"
	sizeQueryParam = "size"
)

var errInvalidPageParam = domain.NewValidationError("page", "invalid_page",
	"page and size must be positive integers")

// HandleAPIError writes the status, safe message and error type derived from
// err. defaultMsg replaces the message of 500 responses when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		if _, isDomain := domain.AsError(err); !isDomain {
			message = defaultMsg
		}
	}

	opts := []shared.ResponseOption{shared.WithErrorType(GetErrorType(err))}
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// getUserIDFromContext extracts the authenticated user's UUID from the request context.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	return shared.UserIDFromContext(r.Context())
}

// getActor builds the service actor for the authenticated caller, writing a
// 401 response when the context carries no user.
func getActor(w http.ResponseWriter, r *http.Request, log *slog.Logger) (service.Actor, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid",
			shared.WithErrorType(domain.KindUnauthorized.String()))
		return service.Actor{}, false
	}
	return service.Actor{UserID: userID, Roles: shared.RolesFromContext(r.Context())}, true
}

// getPathID parses a positive int64 identifier from the URL path.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, "id_required", paramName+" is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError(paramName, "invalid_id", paramName+" has invalid format")
	}
	return id, nil
}

// getPathUUID parses a UUID from the URL path.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "id_required", paramName+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "invalid_id", paramName+" has invalid format")
	}
	return id, nil
}

// handlePathID extracts an int64 path ID, writing a 400 response on failure.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string, log *slog.Logger) (int64, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}
	id, err := getPathID(r, paramName)
	if err != nil {
		log.Warn("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// getPage reads the page and size query parameters. Missing values use the
// store defaults; non-numeric or negative values are rejected, as are page
// numbers past store.MaxPageNumber.
func getPage(r *http.Request) (store.Page, error) {
	number, err := queryInt(r, pageQueryParam)
	if err != nil {
		return store.Page{}, err
	}
	if number > store.MaxPageNumber {
		return store.Page{}, errInvalidPageParam
	}
	size, err := queryInt(r, sizeQueryParam)
	if err != nil {
		return store.Page{}, err
	}
	return store.NewPage(number, size), nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errInvalidPageParam
	}
	return v, nil
}

// decodeAndValidate decodes the JSON body into req and validates it, writing
// a 400 response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format",
			shared.WithErrorType("invalid_request_body"))
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err,
			shared.WithErrorType("validation_error"))
		return false
	}
	return true
}
