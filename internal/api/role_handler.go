package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/service"
)

// RoleHandler serves the admin-only role endpoints.
type RoleHandler struct {
	roleService service.RoleService
	logger      *slog.Logger
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roleService service.RoleService, logger *slog.Logger) *RoleHandler {
	if roleService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("roleService cannot be nil for RoleHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RoleHandler")
	}
	return &RoleHandler{
		roleService: roleService,
		logger:      logger.With(slog.String("component", "role_handler")),
	}
}

// CreateRole handles POST /api/roles.
func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RoleRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	role, err := h.roleService.Create(r.Context(), req.Name, req.Type)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create role")
		return
	}

	log.Info("role created", slog.Int64("role_id", role.ID), slog.String("role_type", string(role.Type)))
	shared.RespondWithJSON(w, r, http.StatusCreated, roleToResponse(role))
}

// ListRoles handles GET /api/roles.
func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list roles")
		return
	}

	resp := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		resp = append(resp, roleToResponse(role))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// AssignRole handles PUT /api/users/{id}/roles/{name}.
func (h *RoleHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	roleName := chi.URLParam(r, "name")

	if err := h.roleService.AssignToUser(r.Context(), userID, roleName); err != nil {
		HandleAPIError(w, r, err, "Failed to assign role")
		return
	}

	log.Info("role assigned", slog.String("user_id", userID.String()), slog.String("role_name", roleName))
	w.WriteHeader(http.StatusNoContent)
}
