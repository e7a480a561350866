// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/metrics"
)

// ErrParse is returned when an import blob is not a JSON object.
var ErrParse = parseError("import data is not a valid JSON object")

type parseError string

func (e parseError) Error() string { return string(e) }

// ImportOptions configures an import.
type ImportOptions struct {
	// Prefix restricts the keys written; other keys are skipped.
	Prefix string

	// DryRun parses and counts without writing.
	DryRun bool
}

// ImportResult tracks the outcome of an import.
type ImportResult struct {
	DryRun  bool     `json:"dryRun"`
	Written []string `json:"written"`
	Skipped []string `json:"skipped"`
}

// Importer writes exported documents back into the store.
type Importer struct {
	docs    docstore.Store
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewImporter creates a new Importer instance. rec and logger may be nil.
func NewImporter(docs docstore.Store, rec metrics.Recorder, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{docs: docs, metrics: metrics.OrNop(rec), logger: logger}
}

// Parse decodes an export blob into key/value pairs. String values are
// taken verbatim; any other JSON value is kept as its compact JSON text.
func Parse(blob []byte) (map[string]string, error) {
	trimmed := bytes.TrimSpace(blob)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrParse
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if len(v) > 0 && v[0] == '"' {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, fmt.Errorf("%w: key %s: %v", ErrParse, k, err)
			}
			out[k] = s
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return nil, fmt.Errorf("%w: key %s: %v", ErrParse, k, err)
		}
		out[k] = buf.String()
	}
	return out, nil
}

// Import parses blob and overwrites every key starting with opts.Prefix.
// Nothing is written when parsing fails. Keys not present in blob are left
// untouched.
func (i *Importer) Import(ctx context.Context, blob []byte, opts ImportOptions) (*ImportResult, error) {
	values, err := Parse(blob)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := &ImportResult{DryRun: opts.DryRun, Written: []string{}, Skipped: []string{}}
	for _, k := range keys {
		if !strings.HasPrefix(k, opts.Prefix) {
			result.Skipped = append(result.Skipped, k)
			continue
		}
		if !opts.DryRun {
			if err := i.docs.Set(ctx, k, []byte(values[k])); err != nil {
				return result, fmt.Errorf("writing %s: %w", k, err)
			}
		}
		result.Written = append(result.Written, k)
	}

	if !opts.DryRun {
		i.metrics.RecordImport(len(result.Written), len(result.Skipped))
	}
	i.logger.Info("documents imported",
		"prefix", opts.Prefix,
		"written", len(result.Written),
		"skipped", len(result.Skipped),
		"dry_run", opts.DryRun,
	)
	return result, nil
}

// ImportAll imports blob, restricted to keys starting with prefix.
func (i *Importer) ImportAll(ctx context.Context, blob []byte, prefix string) (*ImportResult, error) {
	return i.Import(ctx, blob, ImportOptions{Prefix: prefix})
}
