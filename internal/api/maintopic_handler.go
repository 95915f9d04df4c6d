package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/service"
)

// MaintopicHandler handles maintopic HTTP requests.
type MaintopicHandler struct {
	maintopicService service.MaintopicService
	logger           *slog.Logger
}

// NewMaintopicHandler creates a new MaintopicHandler.
func NewMaintopicHandler(maintopicService service.MaintopicService, logger *slog.Logger) *MaintopicHandler {
	if maintopicService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("maintopicService cannot be nil for MaintopicHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MaintopicHandler")
	}
	return &MaintopicHandler{
		maintopicService: maintopicService,
		logger:           logger.With(slog.String("component", "maintopic_handler")),
	}
}

// CreateMaintopic handles POST /api/maintopics.
func (h *MaintopicHandler) CreateMaintopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := getActor(w, r, log)
	if !ok {
		return
	}

	var req MaintopicRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	maintopic, err := h.maintopicService.Create(r.Context(), actor, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create maintopic")
		return
	}

	log.Debug("maintopic created", slog.Int64("maintopic_id", maintopic.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, maintopicToResponse(maintopic))
}

// GetMaintopic handles GET /api/maintopics/{id}.
func (h *MaintopicHandler) GetMaintopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	maintopic, err := h.maintopicService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get maintopic")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, maintopicToResponse(maintopic))
}

// ListMaintopics handles GET /api/maintopics?page=&size=.
func (h *MaintopicHandler) ListMaintopics(w http.ResponseWriter, r *http.Request) {
	page, err := getPage(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.maintopicService.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list maintopics")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(result, maintopicToResponse))
}

// UpdateMaintopic handles PUT /api/maintopics/{id}.
// Any failure past the ownership check is reported as "update failed".
func (h *MaintopicHandler) UpdateMaintopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := getActor(w, r, log)
	if !ok {
		return
	}
	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req MaintopicRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	maintopic, err := h.maintopicService.Update(r.Context(), actor, id, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, service.UpdateFailedMessage)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, maintopicToResponse(maintopic))
}

// CloseMaintopic handles POST /api/maintopics/{id}/close.
func (h *MaintopicHandler) CloseMaintopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := getActor(w, r, log)
	if !ok {
		return
	}
	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	maintopic, err := h.maintopicService.Close(r.Context(), actor, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to close maintopic")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, maintopicToResponse(maintopic))
}

// DeleteMaintopic handles DELETE /api/maintopics/{id}.
func (h *MaintopicHandler) DeleteMaintopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := getActor(w, r, log)
	if !ok {
		return
	}
	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.maintopicService.Delete(r.Context(), actor, id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete maintopic")
		return
	}

	log.Debug("maintopic deleted", slog.Int64("maintopic_id", id))
	w.WriteHeader(http.StatusNoContent)
}
