// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler implements the vitrine JSON API.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/olegiv/vitrine-go/internal/content"
	"github.com/olegiv/vitrine-go/internal/identity"
	"github.com/olegiv/vitrine-go/internal/imaging"
	"github.com/olegiv/vitrine-go/internal/legal"
	"github.com/olegiv/vitrine-go/internal/transfer"
)

// maxJSONBody bounds JSON request bodies other than imports.
const maxJSONBody = 1 << 20

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}

// writeJSONSuccess writes a JSON success response.
func writeJSONSuccess(w http.ResponseWriter, data map[string]any) {
	writeJSONStatus(w, http.StatusOK, data)
}

func writeJSONStatus(w http.ResponseWriter, statusCode int, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			writeJSONError(w, http.StatusBadRequest, "Request body is required")
			return false
		}
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// writeError maps an application error to its HTTP status. Unexpected
// errors are logged and reported as 500.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error, logMsg string, args ...any) {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSONError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, identity.ErrInvalidPIN):
		writeJSONError(w, http.StatusUnauthorized, "Invalid PIN")
	case errors.Is(err, identity.ErrDefaultIdentity):
		writeJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, transfer.ErrParse):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, imaging.ErrUnsupported), errors.Is(err, imaging.ErrTooLarge):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, content.ErrNotFound),
		errors.Is(err, identity.ErrNotFound),
		errors.Is(err, legal.ErrUnknownDocument):
		writeJSONError(w, http.StatusNotFound, "Not found")
	default:
		logger.Error(logMsg, append(args, "error", err)...)
		writeJSONError(w, http.StatusInternalServerError, "Internal error")
	}
}

// badRequest is a shorthand for a 400 with a formatted message.
func badRequest(w http.ResponseWriter, format string, args ...any) {
	writeJSONError(w, http.StatusBadRequest, fmt.Sprintf(format, args...))
}
