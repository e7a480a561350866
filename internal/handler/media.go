// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/olegiv/vitrine-go/internal/content"
	"github.com/olegiv/vitrine-go/internal/imaging"
)

// MediaHandler turns uploaded images into resized data URLs.
type MediaHandler struct {
	processor *imaging.Processor
	stores    *content.Stores
	logger    *slog.Logger
}

// NewMediaHandler creates a media handler.
func NewMediaHandler(processor *imaging.Processor, stores *content.Stores, logger *slog.Logger) *MediaHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MediaHandler{processor: processor, stores: stores, logger: logger}
}

// Upload handles POST /api/admin/media. It expects a multipart "file"
// field; with target=profile the result also replaces the profile image.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Multipart overhead on top of the image itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.processor.MaxBytes()+64<<10)
	if err := r.ParseMultipartForm(h.processor.MaxBytes()); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		badRequest(w, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "file: is required")
		return
	}
	defer func() { _ = file.Close() }()

	res, err := h.processor.Process(file)
	if err != nil {
		writeError(w, h.logger, err, "failed to process upload")
		return
	}

	savedAs := ""
	if r.FormValue("target") == content.TextProfileImage || r.FormValue("target") == "profile" {
		if err := h.stores.ProfileImage.Save(r.Context(), res.DataURL); err != nil {
			writeError(w, h.logger, err, "failed to save profile image")
			return
		}
		savedAs = content.TextProfileImage
	}

	writeJSONSuccess(w, map[string]any{
		"dataUrl":  res.DataURL,
		"width":    res.Width,
		"height":   res.Height,
		"mimeType": res.MimeType,
		"size":     res.Size,
		"savedAs":  savedAs,
	})
}
