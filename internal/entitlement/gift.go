// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package entitlement

import (
	"context"
	"fmt"
	"strings"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/metrics"
)

// GiftState is the visitor-facing view of the gift.
type GiftState struct {
	Enabled      bool   `json:"enabled"`
	Title        string `json:"title"`
	Unlocked     bool   `json:"unlocked"`
	DownloadLink string `json:"downloadLink,omitempty"`
}

// UnlockGift compares code, trimmed and case-insensitively, with the
// current gift code and records the unlock on a match. A disabled gift
// cannot be unlocked.
func (t *Tracker) UnlockGift(ctx context.Context, code string) (bool, error) {
	cfg, err := t.codes.GiftConfig(ctx)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if !cfg.Enabled || cfg.Code == "" || code == "" || !strings.EqualFold(code, cfg.Code) {
		t.metrics.RecordUnlock("gift", metrics.OutcomeRejected)
		return false, nil
	}

	if err := docstore.SetString(ctx, t.docs, t.keys.GiftUnlocked(), docstore.TrueSentinel); err != nil {
		return false, fmt.Errorf("recording gift unlock: %w", err)
	}
	t.metrics.RecordUnlock("gift", metrics.OutcomeSuccess)
	return true, nil
}

// GiftUnlocked reports whether the gift was unlocked.
func (t *Tracker) GiftUnlocked(ctx context.Context) (bool, error) {
	return t.flag(ctx, t.keys.GiftUnlocked())
}

// Gift returns the gift state. The download link is only included when
// the gift is enabled and unlocked.
func (t *Tracker) Gift(ctx context.Context) (GiftState, error) {
	cfg, err := t.codes.GiftConfig(ctx)
	if err != nil {
		return GiftState{}, err
	}
	unlocked, err := t.GiftUnlocked(ctx)
	if err != nil {
		return GiftState{}, err
	}

	st := GiftState{Enabled: cfg.Enabled, Title: cfg.Title, Unlocked: unlocked}
	if cfg.Enabled && unlocked {
		st.DownloadLink = cfg.DownloadLink
	}
	return st, nil
}
