// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/vitrine-go/internal/logging"
	"github.com/olegiv/vitrine-go/internal/scheduler"
)

// EventsHandler exposes recent warnings and scheduled job status to admins.
type EventsHandler struct {
	events *logging.EventLog
	sched  *scheduler.Scheduler
}

// NewEventsHandler creates an events handler. Either argument may be nil.
func NewEventsHandler(events *logging.EventLog, sched *scheduler.Scheduler) *EventsHandler {
	return &EventsHandler{events: events, sched: sched}
}

// Events handles GET /api/admin/events. ?category= filters the result.
func (h *EventsHandler) Events(w http.ResponseWriter, r *http.Request) {
	events := []logging.Event{}
	if h.events != nil {
		category := r.URL.Query().Get("category")
		for _, e := range h.events.Events() {
			if category == "" || e.Category == category {
				events = append(events, e)
			}
		}
	}
	writeJSONSuccess(w, map[string]any{"events": events})
}

// Jobs handles GET /api/admin/jobs.
func (h *EventsHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	jobs := []scheduler.JobInfo{}
	if h.sched != nil {
		jobs = append(jobs, h.sched.Jobs()...)
	}
	writeJSONSuccess(w, map[string]any{"jobs": jobs})
}
