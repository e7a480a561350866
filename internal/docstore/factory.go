// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docstore

import (
	"fmt"
	"log/slog"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds configuration for store creation.
type Config struct {
	// Backend is "memory", "sqlite" or "redis".
	Backend string

	// DBPath is the SQLite database file (sqlite backend).
	DBPath string

	// RedisURL and RedisPrefix configure the redis backend.
	RedisURL    string
	RedisPrefix string

	// FallbackToMemory uses a memory store when Redis is unreachable.
	FallbackToMemory bool
}

// Info describes the store that Open actually created.
type Info struct {
	Backend    string
	IsFallback bool
}

// Open creates the store selected by cfg.
func Open(cfg Config, logger *slog.Logger) (Store, Info, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), Info{Backend: BackendMemory}, nil

	case BackendSQLite:
		s, err := OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, Info{}, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, Info{Backend: BackendSQLite}, nil

	case BackendRedis:
		opts := DefaultRedisOptions()
		opts.URL = cfg.RedisURL
		opts.Prefix = cfg.RedisPrefix
		s, err := NewRedisStore(opts)
		if err != nil {
			if !cfg.FallbackToMemory {
				return nil, Info{}, fmt.Errorf("connecting to redis: %w", err)
			}
			logger.Warn("redis unavailable, falling back to memory document store", "error", err)
			return NewMemoryStore(), Info{Backend: BackendMemory, IsFallback: true}, nil
		}
		return s, Info{Backend: BackendRedis}, nil

	default:
		return nil, Info{}, fmt.Errorf("unknown document store backend %q", cfg.Backend)
	}
}
