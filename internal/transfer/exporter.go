// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transfer moves persisted documents between installations as one
// flat JSON object mapping document keys to their raw values.
package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olegiv/vitrine-go/internal/docstore"
)

// Exporter serializes documents of the store.
type Exporter struct {
	docs   docstore.Store
	logger *slog.Logger
}

// NewExporter creates a new Exporter instance.
func NewExporter(docs docstore.Store, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{docs: docs, logger: logger}
}

// Snapshot returns every document whose key starts with prefix.
func (e *Exporter) Snapshot(ctx context.Context, prefix string) (map[string]string, error) {
	keys, err := e.docs.Keys(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		v, err := e.docs.Get(ctx, k)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", k, err)
		}
		out[k] = string(v)
	}
	return out, nil
}

// ExportAll returns the pretty-printed JSON object {key: raw value} of
// every document whose key starts with prefix. An empty selection
// exports as "{}".
func (e *Exporter) ExportAll(ctx context.Context, prefix string) (string, error) {
	snap, err := e.Snapshot(ctx, prefix)
	if err != nil {
		return "", err
	}
	if len(snap) == 0 {
		return "{}", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}

	e.logger.Info("documents exported", "prefix", prefix, "keys", len(snap))
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
