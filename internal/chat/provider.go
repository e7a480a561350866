// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package chat

import (
	"context"
	"fmt"
	"log/slog"
)

// Provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// ProviderConfig selects and configures a provider.
type ProviderConfig struct {
	Provider      string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
}

// NewProvider builds the configured provider. It returns nil without an
// error when the provider is "none" or its API key is missing, so the
// relay answers with ReplyUnavailable.
func NewProvider(ctx context.Context, cfg ProviderConfig, logger *slog.Logger) (Provider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Provider {
	case "", ProviderNone:
		return nil, nil
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			logger.Warn("gemini API key missing, chat assistant disabled")
			return nil, nil
		}
		p, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("openai API key missing, chat assistant disabled")
			return nil, nil
		}
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.Model, cfg.OpenAIBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown chat provider %q", cfg.Provider)
	}
}
