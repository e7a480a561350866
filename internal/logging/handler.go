// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging builds the process logger and keeps the most recent
// warnings and errors in memory so admins can review them.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Event categories.
const (
	CategoryAuth   = "auth"
	CategoryShop   = "shop"
	CategorySync   = "sync"
	CategoryChat   = "chat"
	CategorySystem = "system"
)

// DefaultEventCapacity is the number of events kept by NewEventLog(0).
const DefaultEventCapacity = 200

// Event is a logged warning or error.
type Event struct {
	Time     time.Time         `json:"time"`
	Level    string            `json:"level"`
	Category string            `json:"category"`
	Message  string            `json:"message"`
	Attrs    map[string]string `json:"attrs,omitempty"`
}

// EventLog is a fixed-size ring of recent events.
type EventLog struct {
	mu     sync.Mutex
	events []Event
	next   int
	full   bool
}

// NewEventLog creates an event log holding up to capacity events.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultEventCapacity
	}
	return &EventLog{events: make([]Event, capacity)}
}

func (l *EventLog) add(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events[l.next] = e
	l.next = (l.next + 1) % len(l.events)
	if l.next == 0 {
		l.full = true
	}
}

// Events returns the stored events, newest first.
func (l *EventLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.next
	if l.full {
		n = len(l.events)
	}
	out := make([]Event, 0, n)
	for i := 1; i <= n; i++ {
		idx := (l.next - i + len(l.events)) % len(l.events)
		out = append(out, l.events[idx])
	}
	return out
}

// EventLogHandler is a slog.Handler that wraps another handler and also
// records WARN and ERROR level logs in an EventLog.
type EventLogHandler struct {
	inner slog.Handler
	log   *EventLog
	level slog.Level
	attrs []slog.Attr
}

// NewEventLogHandler creates a new EventLogHandler that wraps the given handler.
// Logs at WARN level and above will be written to both the wrapped handler and the Event Log.
func NewEventLogHandler(inner slog.Handler, log *EventLog) *EventLogHandler {
	return &EventLogHandler{inner: inner, log: log, level: slog.LevelWarn}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level >= h.level {
		h.log.add(h.toEvent(r))
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithAttrs(attrs),
		log:   h.log,
		level: h.level,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithGroup(name),
		log:   h.log,
		level: h.level,
		attrs: h.attrs,
	}
}

func (h *EventLogHandler) toEvent(r slog.Record) Event {
	e := Event{
		Time:    r.Time,
		Level:   levelName(r.Level),
		Message: r.Message,
		Attrs:   make(map[string]string, r.NumAttrs()+len(h.attrs)),
	}

	collect := func(a slog.Attr) bool {
		if a.Key == "category" {
			e.Category = a.Value.String()
			return true
		}
		e.Attrs[a.Key] = a.Value.String()
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	if e.Category == "" {
		e.Category = inferCategory(r.Message)
	}
	if len(e.Attrs) == 0 {
		e.Attrs = nil
	}
	return e
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	default:
		return "info"
	}
}

// inferCategory guesses a category from common words of the message.
func inferCategory(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case containsAny(msg, "auth", "login", "logout", "pin", "identity", "session"):
		return CategoryAuth
	case containsAny(msg, "unlock", "order", "entitlement", "gift"):
		return CategoryShop
	case containsAny(msg, "import", "export", "backup"):
		return CategorySync
	case containsAny(msg, "chat", "gemini", "openai"):
		return CategoryChat
	default:
		return CategorySystem
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ParseLevel maps debug, info, warn and error to slog levels. Unknown
// values map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w at level, recording warnings and
// errors in events when it is non-nil.
func New(w io.Writer, level string, events *EventLog) *slog.Logger {
	inner := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	if events == nil {
		return slog.New(inner)
	}
	return slog.New(NewEventLogHandler(inner, events))
}
