// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/vitrine-go/internal/app"
	"github.com/olegiv/vitrine-go/internal/middleware"
	"github.com/olegiv/vitrine-go/internal/transfer"
)

// maxImportBody bounds an import upload. Exports carry data-URL images.
const maxImportBody = 64 << 20

// BackupJobName is the scheduler name of the backup job.
const BackupJobName = "backup"

// JobTrigger runs a named scheduled job on demand.
type JobTrigger interface {
	Trigger(ctx context.Context, name string) error
}

// SyncHandler serves export, import and backups.
type SyncHandler struct {
	app    *app.App
	backup *transfer.Backup
	jobs   JobTrigger
	logger *slog.Logger
}

// NewSyncHandler creates a sync handler. backup and jobs may be nil when
// scheduled backups are disabled.
func NewSyncHandler(a *app.App, backup *transfer.Backup, jobs JobTrigger, logger *slog.Logger) *SyncHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncHandler{app: a, backup: backup, jobs: jobs, logger: logger}
}

// Export handles GET /api/admin/export. The export is sent as an
// attachment named like a backup file.
func (h *SyncHandler) Export(w http.ResponseWriter, r *http.Request) {
	blob, err := h.app.Export(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to export")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+transfer.BackupName(time.Now())+`"`)
	_, _ = io.WriteString(w, blob)
}

// Import handles POST /api/admin/import with the export JSON as body.
func (h *SyncHandler) Import(w http.ResponseWriter, r *http.Request) {
	blob, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBody))
	if err != nil {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "Import too large")
		return
	}
	res, err := h.app.Import(r.Context(), blob)
	if err != nil {
		writeError(w, h.logger, err, "failed to import")
		return
	}
	admin, _ := middleware.GetAdmin(r)
	h.logger.Info("site data imported", "category", "sync",
		"written", len(res.Written), "skipped", len(res.Skipped), "by", admin.ID)
	writeJSONSuccess(w, map[string]any{"result": res})
}

func (h *SyncHandler) backupsEnabled(w http.ResponseWriter) bool {
	if h.backup == nil {
		writeJSONError(w, http.StatusNotFound, "Backups are disabled")
		return false
	}
	return true
}

// ListBackups handles GET /api/admin/backups.
func (h *SyncHandler) ListBackups(w http.ResponseWriter, r *http.Request) {
	if !h.backupsEnabled(w) {
		return
	}
	names, err := h.backup.List()
	if err != nil {
		writeError(w, h.logger, err, "failed to list backups")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSONSuccess(w, map[string]any{"backups": names})
}

// RunBackup handles POST /api/admin/backups. The run goes through the
// scheduler so the job status reflects it.
func (h *SyncHandler) RunBackup(w http.ResponseWriter, r *http.Request) {
	if !h.backupsEnabled(w) {
		return
	}
	var err error
	if h.jobs != nil {
		err = h.jobs.Trigger(r.Context(), BackupJobName)
	} else {
		_, err = h.backup.Run(r.Context())
	}
	if err != nil {
		writeError(w, h.logger, err, "failed to run backup")
		return
	}
	names, err := h.backup.List()
	if err != nil {
		writeError(w, h.logger, err, "failed to list backups")
		return
	}
	latest := ""
	if len(names) > 0 {
		latest = names[0]
	}
	writeJSONStatus(w, http.StatusCreated, map[string]any{"backup": latest})
}

// DownloadBackup handles GET /api/admin/backups/{name}.
func (h *SyncHandler) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	if !h.backupsEnabled(w) {
		return
	}
	name := chi.URLParam(r, "name")
	data, err := h.backup.Read(name)
	if err != nil {
		switch {
		case errors.Is(err, transfer.ErrInvalidBackupName):
			badRequest(w, "Invalid backup name")
		case errors.Is(err, fs.ErrNotExist):
			writeJSONError(w, http.StatusNotFound, "Backup not found")
		default:
			writeError(w, h.logger, err, "failed to read backup", "name", name)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(data)
}
