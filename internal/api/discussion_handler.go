package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/service"
)

// DiscussionHandler handles discussion HTTP requests.
type DiscussionHandler struct {
	discussionService service.DiscussionService
	logger            *slog.Logger
}

// NewDiscussionHandler creates a new DiscussionHandler.
func NewDiscussionHandler(discussionService service.DiscussionService, logger *slog.Logger) *DiscussionHandler {
	if discussionService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("discussionService cannot be nil for DiscussionHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DiscussionHandler")
	}
	return &DiscussionHandler{
		discussionService: discussionService,
		logger:            logger.With(slog.String("component", "discussion_handler")),
	}
}

// CreateDiscussion handles POST /api/maintopics/{id}/discussions.
func (h *DiscussionHandler) CreateDiscussion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := getActor(w, r, log)
	if !ok {
		return
	}
	maintopicID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req DiscussionRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	discussion, err := h.discussionService.Create(r.Context(), actor, maintopicID, req.Paragraph)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create discussion")
		return
	}

	log.Debug("discussion created",
		slog.Int64("discussion_id", discussion.ID),
		slog.Int64("maintopic_id", maintopicID))
	shared.RespondWithJSON(w, r, http.StatusCreated, discussionToResponse(discussion))
}

// GetDiscussion handles GET /api/discussions/{id}.
func (h *DiscussionHandler) GetDiscussion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	discussion, err := h.discussionService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get discussion")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, discussionToResponse(discussion))
}

// ListDiscussions handles GET /api/discussions?page=&size=.
func (h *DiscussionHandler) ListDiscussions(w http.ResponseWriter, r *http.Request) {
	page, err := getPage(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.discussionService.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list discussions")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(result, discussionToResponse))
}

// ListMaintopicDiscussions handles GET /api/maintopics/{id}/discussions?page=&size=.
func (h *DiscussionHandler) ListMaintopicDiscussions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	maintopicID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}
	page, err := getPage(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.discussionService.ListByMaintopic(r.Context(), maintopicID, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list discussions")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(result, discussionToResponse))
}
