// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for vitrine packages.
package testutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/olegiv/vitrine-go/internal/docstore"
)

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestLoggerSilent creates a completely silent test logger (error level only).
func TestLoggerSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestKeys returns the key builder for the default namespace.
func TestKeys() docstore.Keys {
	return docstore.NewKeys("")
}

// TestSQLiteStore opens a migrated SQLite document store in a temp dir.
// The store is closed when the test finishes.
func TestSQLiteStore(t *testing.T) *docstore.SQLiteStore {
	t.Helper()

	s, err := docstore.OpenSQLite(filepath.Join(t.TempDir(), "vitrine-test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// Snapshot returns every key/value pair currently held by s.
func Snapshot(t *testing.T, s docstore.Store) map[string]string {
	t.Helper()

	ctx := t.Context()
	keys, err := s.Keys(ctx, "")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := s.Get(ctx, k)
		if err != nil {
			t.Fatalf("Get(%q): %v", k, err)
		}
		out[k] = string(v)
	}
	return out
}
