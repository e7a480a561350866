// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON decodes the document stored under key into a T.
// Returns ErrNotFound when the key is absent.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T
	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decoding document %q: %w", key, err)
	}
	return v, nil
}

// SetJSON encodes v and overwrites the document stored under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding document %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// GetString returns a plain-text document.
func GetString(ctx context.Context, s Store, key string) (string, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SetString stores a plain-text document.
func SetString(ctx context.Context, s Store, key, value string) error {
	return s.Set(ctx, key, []byte(value))
}
