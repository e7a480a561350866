// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/version"
)

// ChatStatus reports whether the chat assistant has a provider.
type ChatStatus interface {
	Configured() bool
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	docs      docstore.Store
	backend   string
	chat      ChatStatus
	startTime time.Time
}

// NewHealthHandler creates a new health handler. chat may be nil.
func NewHealthHandler(docs docstore.Store, backend string, chat ChatStatus) *HealthHandler {
	return &HealthHandler{docs: docs, backend: backend, chat: chat, startTime: time.Now()}
}

// HealthStatus is the health response.
type HealthStatus struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
	Chat    bool   `json:"chat"`
	Error   string `json:"error,omitempty"`
}

// Health handles GET /health. The store is checked with a key listing that
// matches nothing.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Status:  "ok",
		Backend: h.backend,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Version: version.Get().Version,
		Chat:    h.chat != nil && h.chat.Configured(),
	}
	code := http.StatusOK
	if _, err := h.docs.Keys(ctx, "\x00"); err != nil {
		status.Status = "unavailable"
		status.Error = err.Error()
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}
