// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package chat relays visitor questions to a generative model speaking as
// Basile's assistant. Callers always get a displayable reply; provider
// failures turn into fixed fallback messages.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/olegiv/vitrine-go/internal/metrics"
	"github.com/olegiv/vitrine-go/internal/model"
)

// Fallback replies.
const (
	ReplyUnavailable = "Désolé, je rencontre une petite difficulté technique. Contactez Basile directement via WhatsApp !"
	ReplyEmpty       = "Je n'ai pas pu formuler de réponse. Essayez de reformuler ou contactez Basile !"
	ReplyOverloaded  = "Je suis un peu surchargé par les demandes. Cliquez sur le bouton WhatsApp pour parler directement à Basile !"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 30 * time.Second

// Generation parameters shared by providers.
const (
	Temperature = 0.8
	TopP        = 0.95
)

// Request is one generation call.
type Request struct {
	System  string
	History []model.ChatMessage
	Prompt  string
}

// Provider generates a reply for a conversation.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Relay forwards questions to a Provider.
type Relay struct {
	provider Provider
	timeout  time.Duration
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewRelay creates a relay. A nil provider makes every Ask return
// ReplyUnavailable.
func NewRelay(provider Provider, timeout time.Duration, rec metrics.Recorder, logger *slog.Logger) *Relay {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{
		provider: provider,
		timeout:  timeout,
		metrics:  metrics.OrNop(rec),
		logger:   logger,
	}
}

// Configured reports whether a provider is available.
func (r *Relay) Configured() bool {
	return r != nil && r.provider != nil
}

// Ask returns the assistant reply to prompt given the prior history.
func (r *Relay) Ask(ctx context.Context, prompt string, history []model.ChatMessage) string {
	if r.provider == nil {
		r.logger.Error("chat provider not configured")
		r.metrics.RecordChat("none", metrics.OutcomeFallback, 0)
		return ReplyUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	reply, err := r.provider.Generate(ctx, Request{
		System:  Persona,
		History: normalizeHistory(history),
		Prompt:  prompt,
	})
	elapsed := time.Since(start)

	if err != nil {
		r.logger.Error("chat provider failed", "provider", r.provider.Name(), "error", err)
		r.metrics.RecordChat(r.provider.Name(), metrics.OutcomeError, elapsed)
		return ReplyOverloaded
	}
	if strings.TrimSpace(reply) == "" {
		r.metrics.RecordChat(r.provider.Name(), metrics.OutcomeEmpty, elapsed)
		return ReplyEmpty
	}

	r.metrics.RecordChat(r.provider.Name(), metrics.OutcomeSuccess, elapsed)
	return reply
}

// normalizeHistory maps any role other than assistant to user.
func normalizeHistory(history []model.ChatMessage) []model.ChatMessage {
	out := make([]model.ChatMessage, len(history))
	for i, m := range history {
		if m.Role != model.ChatRoleAssistant {
			m.Role = model.ChatRoleUser
		}
		out[i] = m
	}
	return out
}
