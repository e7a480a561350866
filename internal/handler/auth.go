// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/vitrine-go/internal/identity"
	"github.com/olegiv/vitrine-go/internal/middleware"
	"github.com/olegiv/vitrine-go/internal/session"
)

// AuthHandler handles admin login, logout and PIN rotation.
type AuthHandler struct {
	identities *identity.Store
	sm         *scs.SessionManager
	protection *middleware.LoginProtection
	logger     *slog.Logger
}

// NewAuthHandler creates an auth handler. protection may be nil.
func NewAuthHandler(identities *identity.Store, sm *scs.SessionManager, protection *middleware.LoginProtection, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{identities: identities, sm: sm, protection: protection, logger: logger}
}

type loginRequest struct {
	PIN string `json:"pin"`
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)
	if h.protection != nil {
		if !h.protection.CheckIPRateLimit(ip) {
			writeJSONError(w, http.StatusTooManyRequests, "Too many login attempts. Please slow down.")
			return
		}
		if locked, remaining := h.protection.IsLocked(ip); locked {
			w.Header().Set("Retry-After", strconv.Itoa(int(remaining.Seconds())+1))
			writeJSONError(w, http.StatusTooManyRequests, "Too many failed attempts. Try again later.")
			return
		}
	}

	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin, err := h.identities.Authenticate(r.Context(), req.PIN)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidPIN) && h.protection != nil {
			if locked, d := h.protection.RecordFailedAttempt(ip); locked {
				h.logger.Warn("admin login locked out", "category", "auth", "ip", ip, "duration", d)
			}
		}
		if errors.Is(err, identity.ErrInvalidPIN) {
			h.logger.Warn("failed admin login", "category", "auth", "ip", ip)
		}
		writeError(w, h.logger, err, "failed to authenticate")
		return
	}

	if h.protection != nil {
		h.protection.RecordSuccess(ip)
	}
	if err := session.Login(r.Context(), h.sm, admin.ID); err != nil {
		writeError(w, h.logger, err, "failed to start session")
		return
	}
	h.logger.Info("admin logged in", "category", "auth", "admin_id", admin.ID)
	writeJSONSuccess(w, map[string]any{"admin": admin.View()})
}

// Logout handles POST /api/admin/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	admin, _ := middleware.GetAdmin(r)
	if err := h.identities.LogoutIdentity(r.Context(), admin.ID); err != nil {
		writeError(w, h.logger, err, "failed to clear identity session")
		return
	}
	if err := session.Logout(r.Context(), h.sm); err != nil {
		writeError(w, h.logger, err, "failed to destroy session")
		return
	}
	writeJSONSuccess(w, nil)
}

// Me handles GET /api/admin/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, _ := middleware.GetAdmin(r)
	writeJSONSuccess(w, map[string]any{"admin": admin.View()})
}

type changePINRequest struct {
	OldPIN     string `json:"oldPin"`
	NewPIN     string `json:"newPin"`
	ConfirmPIN string `json:"confirmPin"`
}

// ChangePIN handles PUT /api/admin/pin.
func (h *AuthHandler) ChangePIN(w http.ResponseWriter, r *http.Request) {
	var req changePINRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.NewPIN != req.ConfirmPIN {
		badRequest(w, "confirmPin: does not match newPin")
		return
	}
	if !identity.ValidPIN(req.NewPIN) {
		badRequest(w, "newPin: must be exactly 4 digits")
		return
	}

	admin, _ := middleware.GetAdmin(r)
	ok, err := h.identities.RotatePIN(r.Context(), admin.ID, req.OldPIN, req.NewPIN)
	if err != nil {
		writeError(w, h.logger, err, "failed to rotate PIN", "admin_id", admin.ID)
		return
	}
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Current PIN is incorrect")
		return
	}
	h.logger.Info("admin PIN changed", "category", "auth", "admin_id", admin.ID)
	writeJSONSuccess(w, nil)
}
