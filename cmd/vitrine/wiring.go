// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/vitrine-go/internal/app"
	"github.com/olegiv/vitrine-go/internal/chat"
	"github.com/olegiv/vitrine-go/internal/config"
	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/identity"
	"github.com/olegiv/vitrine-go/internal/metrics"
)

// site is an opened document store and the controller over it.
type site struct {
	docs docstore.Store
	info docstore.Info
	app  *app.App
}

func (s *site) Close() error {
	return s.docs.Close()
}

// openSite opens the configured document store and builds the App.
// The chat provider is only created when withChat is set.
func openSite(ctx context.Context, cfg *config.Config, rec metrics.Recorder, withChat bool, logger *slog.Logger) (*site, error) {
	docs, info, err := docstore.Open(docstore.Config{
		Backend:          cfg.StoreBackend,
		DBPath:           cfg.DBPath,
		RedisURL:         cfg.RedisURL,
		RedisPrefix:      cfg.RedisPrefix,
		FallbackToMemory: cfg.RedisFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("opening document store: %w", err)
	}
	if info.IsFallback {
		logger.Warn("document store is running in memory; changes will be lost on restart")
	}

	var provider chat.Provider
	if withChat {
		provider, err = chat.NewProvider(ctx, chat.ProviderConfig{
			Provider:      cfg.ChatProvider,
			GeminiAPIKey:  cfg.GeminiAPIKey,
			OpenAIAPIKey:  cfg.OpenAIAPIKey,
			OpenAIBaseURL: cfg.OpenAIBaseURL,
			Model:         cfg.ChatModel,
		}, logger)
		if err != nil {
			_ = docs.Close()
			return nil, fmt.Errorf("creating chat provider: %w", err)
		}
	}

	var verifier identity.IdentityVerifier = identity.PlainPINVerifier{}
	if cfg.PINVerifier == config.VerifierArgon2 {
		verifier = identity.Argon2PINVerifier{}
	}

	a := app.New(docs, app.Options{
		Namespace:      cfg.Namespace,
		WhatsAppNumber: cfg.WhatsAppNumber,
		Verifier:       verifier,
		ChatProvider:   provider,
		ChatTimeout:    cfg.ChatTimeout,
		Metrics:        rec,
	}, logger)

	return &site{docs: docs, info: info, app: a}, nil
}
