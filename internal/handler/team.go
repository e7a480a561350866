// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/vitrine-go/internal/identity"
	"github.com/olegiv/vitrine-go/internal/middleware"
	"github.com/olegiv/vitrine-go/internal/model"
)

// TeamHandler manages admin identities. Every route requires a super admin.
type TeamHandler struct {
	identities *identity.Store
	logger     *slog.Logger
}

// NewTeamHandler creates a team handler.
func NewTeamHandler(identities *identity.Store, logger *slog.Logger) *TeamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamHandler{identities: identities, logger: logger}
}

// List handles GET /api/admin/team.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.identities.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to list identities")
		return
	}
	views := make([]model.AdminView, 0, len(list))
	for _, a := range list {
		views = append(views, a.View())
	}
	writeJSONSuccess(w, map[string]any{"team": views})
}

type createMemberRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PIN          string `json:"pin"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

// Create handles POST /api/admin/team.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		badRequest(w, "name: is required")
		return
	}
	if !identity.ValidPIN(req.PIN) {
		badRequest(w, "pin: must be exactly 4 digits")
		return
	}

	a, err := h.identities.AddIdentity(r.Context(), req.Name, req.Email, req.PIN, req.IsSuperAdmin)
	if err != nil {
		writeError(w, h.logger, err, "failed to add identity")
		return
	}
	actor, _ := middleware.GetAdmin(r)
	h.logger.Info("admin identity added", "category", "auth", "admin_id", a.ID, "by", actor.ID)
	writeJSONStatus(w, http.StatusCreated, map[string]any{"admin": a.View()})
}

// Delete handles DELETE /api/admin/team/{id}. Admins cannot delete
// themselves.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	actor, _ := middleware.GetAdmin(r)
	if id == actor.ID {
		writeJSONError(w, http.StatusForbidden, "You cannot delete your own identity")
		return
	}
	if err := h.identities.RemoveIdentity(r.Context(), id); err != nil {
		writeError(w, h.logger, err, "failed to remove identity", "admin_id", id)
		return
	}
	h.logger.Info("admin identity removed", "category", "auth", "admin_id", id, "by", actor.ID)
	writeJSONSuccess(w, nil)
}

// ToggleSuperAdmin handles POST /api/admin/team/{id}/superadmin.
func (h *TeamHandler) ToggleSuperAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.identities.ToggleSuperAdmin(r.Context(), id); err != nil {
		writeError(w, h.logger, err, "failed to toggle super admin", "admin_id", id)
		return
	}
	a, _, err := h.identities.Find(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "failed to load identity", "admin_id", id)
		return
	}
	writeJSONSuccess(w, map[string]any{"admin": a.View()})
}
