// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package entitlement tracks which purchasable items a visitor ordered and
// unlocked with a secret code, and whether the gift was unlocked.
//
// Unlock state is never cached: it is derived on every read by comparing
// the consumed code with the item's current secret code, so changing a
// code invalidates earlier unlocks.
package entitlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/metrics"
	"github.com/olegiv/vitrine-go/internal/model"
)

// State is the visitor-facing state of a purchasable item.
type State string

const (
	StateAvailable State = "available"
	StateOrdered   State = "ordered"
	StateUnlocked  State = "unlocked"
)

// CodeSource resolves purchasable items and the gift configuration.
type CodeSource interface {
	Purchasable(ctx context.Context, id string) (model.Purchasable, error)
	GiftConfig(ctx context.Context) (model.GiftConfig, error)
}

// Tracker is the unlock and entitlement tracker.
type Tracker struct {
	docs    docstore.Store
	keys    docstore.Keys
	codes   CodeSource
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewTracker creates a tracker. rec and logger may be nil.
func NewTracker(docs docstore.Store, keys docstore.Keys, codes CodeSource, rec metrics.Recorder, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{docs: docs, keys: keys, codes: codes, metrics: metrics.OrNop(rec), logger: logger}
}

// MarkOrdered records that an order was sent for item id.
func (t *Tracker) MarkOrdered(ctx context.Context, id string) error {
	if err := docstore.SetString(ctx, t.docs, t.keys.Ordered(id), docstore.TrueSentinel); err != nil {
		return fmt.Errorf("marking %s ordered: %w", id, err)
	}
	return nil
}

// IsOrdered reports whether an order was sent for item id.
func (t *Tracker) IsOrdered(ctx context.Context, id string) (bool, error) {
	return t.flag(ctx, t.keys.Ordered(id))
}

// AttemptUnlock compares code, trimmed and case-insensitively, with the
// current secret code of item id. On a match the code is recorded as
// consumed. Items without a secret code can never be unlocked.
func (t *Tracker) AttemptUnlock(ctx context.Context, id, code string) (bool, error) {
	item, err := t.codes.Purchasable(ctx, id)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	secret := item.UnlockCode()
	if secret == "" || code == "" || !strings.EqualFold(code, secret) {
		t.metrics.RecordUnlock("item", metrics.OutcomeRejected)
		return false, nil
	}

	if err := docstore.SetString(ctx, t.docs, t.keys.CodeUsed(id), code); err != nil {
		return false, fmt.Errorf("recording code for %s: %w", id, err)
	}
	t.metrics.RecordUnlock("item", metrics.OutcomeSuccess)
	t.logger.Info("item unlocked", "item_id", id)
	return true, nil
}

// IsUnlocked reports whether the consumed code of item id matches its
// current secret code.
func (t *Tracker) IsUnlocked(ctx context.Context, id string) (bool, error) {
	item, err := t.codes.Purchasable(ctx, id)
	if err != nil {
		return false, err
	}
	return t.unlocked(ctx, item)
}

func (t *Tracker) unlocked(ctx context.Context, item model.Purchasable) (bool, error) {
	secret := item.UnlockCode()
	if secret == "" {
		return false, nil
	}
	used, err := docstore.GetString(ctx, t.docs, t.keys.CodeUsed(item.RecordID()))
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading consumed code: %w", err)
	}
	return strings.EqualFold(used, secret), nil
}

// RevokeEntitlement forgets the consumed code of item id. The ordered
// flag is kept.
func (t *Tracker) RevokeEntitlement(ctx context.Context, id string) error {
	if err := t.docs.Delete(ctx, t.keys.CodeUsed(id)); err != nil {
		return fmt.Errorf("revoking %s: %w", id, err)
	}
	t.logger.Info("entitlement revoked", "item_id", id)
	return nil
}

// State returns the state of item id. Unlocked wins over ordered.
func (t *Tracker) State(ctx context.Context, id string) (State, error) {
	item, err := t.codes.Purchasable(ctx, id)
	if err != nil {
		return StateAvailable, err
	}
	return t.StateOf(ctx, item)
}

// StateOf returns the state of an already resolved item.
func (t *Tracker) StateOf(ctx context.Context, item model.Purchasable) (State, error) {
	ok, err := t.unlocked(ctx, item)
	if err != nil {
		return StateAvailable, err
	}
	if ok {
		return StateUnlocked, nil
	}
	ordered, err := t.IsOrdered(ctx, item.RecordID())
	if err != nil {
		return StateAvailable, err
	}
	if ordered {
		return StateOrdered, nil
	}
	return StateAvailable, nil
}

// DownloadLink returns the content link of item id only when it is
// unlocked.
func (t *Tracker) DownloadLink(ctx context.Context, id string) (string, bool, error) {
	item, err := t.codes.Purchasable(ctx, id)
	if err != nil {
		return "", false, err
	}
	ok, err := t.unlocked(ctx, item)
	if err != nil || !ok {
		return "", false, err
	}
	return item.ContentLink(), true, nil
}

func (t *Tracker) flag(ctx context.Context, key string) (bool, error) {
	v, err := docstore.GetString(ctx, t.docs, key)
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	return v == docstore.TrueSentinel, nil
}
