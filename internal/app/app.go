// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package app wires the document store, identities, content, entitlements,
// checkout, transfer and chat into one site controller.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/olegiv/vitrine-go/internal/chat"
	"github.com/olegiv/vitrine-go/internal/checkout"
	"github.com/olegiv/vitrine-go/internal/content"
	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/entitlement"
	"github.com/olegiv/vitrine-go/internal/identity"
	"github.com/olegiv/vitrine-go/internal/metrics"
	"github.com/olegiv/vitrine-go/internal/model"
	"github.com/olegiv/vitrine-go/internal/transfer"
)

// Options configures an App.
type Options struct {
	// Namespace prefixes every document key. Empty means "vitrine".
	Namespace string

	// WhatsAppNumber is used until the owner stores one.
	WhatsAppNumber string

	// Verifier seals and matches admin PINs. Nil stores PINs as typed.
	Verifier identity.IdentityVerifier

	// ChatProvider answers assistant questions. Nil disables the assistant.
	ChatProvider chat.Provider
	ChatTimeout  time.Duration

	Metrics metrics.Recorder
}

// App is the site controller.
type App struct {
	Docs       docstore.Store
	Keys       docstore.Keys
	Identities *identity.Store
	Content    *content.Stores
	Tracker    *entitlement.Tracker
	Checkout   *checkout.Relay
	Exporter   *transfer.Exporter
	Importer   *transfer.Importer
	Chat       *chat.Relay

	logger *slog.Logger
}

// New creates an App over docs.
func New(docs docstore.Store, opts Options, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Verifier == nil {
		opts.Verifier = identity.PlainPINVerifier{}
	}
	if opts.WhatsAppNumber == "" {
		opts.WhatsAppNumber = checkout.DefaultWhatsAppNumber
	}
	rec := metrics.OrNop(opts.Metrics)
	keys := docstore.NewKeys(opts.Namespace)

	stores := content.NewStores(docs, keys, opts.WhatsAppNumber)
	tracker := entitlement.NewTracker(docs, keys, stores, rec, logger)

	a := &App{
		Docs:       docs,
		Keys:       keys,
		Identities: identity.NewStore(docs, keys, opts.Verifier, logger),
		Content:    stores,
		Tracker:    tracker,
		Checkout:   checkout.NewRelay(tracker, stores.WhatsAppNumber, rec, logger),
		Exporter:   transfer.NewExporter(docs, logger),
		Importer:   transfer.NewImporter(docs, rec, logger),
		Chat:       chat.NewRelay(opts.ChatProvider, opts.ChatTimeout, rec, logger),
		logger:     logger,
	}

	stores.ShopItems.OnUpdate(func(ctx context.Context, old, updated model.ShopItem) error {
		return a.revokeOnCodeChange(ctx, updated.ID, old.SecretCode, updated.SecretCode)
	})
	stores.Formations.OnUpdate(func(ctx context.Context, old, updated model.Formation) error {
		return a.revokeOnCodeChange(ctx, updated.ID, old.SecretCode, updated.SecretCode)
	})
	return a
}

// revokeOnCodeChange forgets the consumed code of id when its secret code
// was edited, so the next visitor must enter the new code.
func (a *App) revokeOnCodeChange(ctx context.Context, id, oldCode, newCode string) error {
	if content.NormalizeCode(oldCode) == content.NormalizeCode(newCode) {
		return nil
	}
	return a.Tracker.RevokeEntitlement(ctx, id)
}

// Prefix is the key prefix of every document owned by the site.
func (a *App) Prefix() string {
	return a.Keys.Prefix()
}

// Export returns the JSON export of every site document.
func (a *App) Export(ctx context.Context) (string, error) {
	return a.Exporter.ExportAll(ctx, a.Prefix())
}

// Import overwrites site documents from an export blob.
func (a *App) Import(ctx context.Context, blob []byte) (*transfer.ImportResult, error) {
	return a.Importer.ImportAll(ctx, blob, a.Prefix())
}
