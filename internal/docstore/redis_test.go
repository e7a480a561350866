// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docstore

import (
	"context"
	"os"
	"testing"
)

// skipIfNoRedis skips the test if Redis is not configured.
func skipIfNoRedis(t *testing.T) string {
	url := os.Getenv("VITRINE_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: VITRINE_TEST_REDIS_URL not set")
	}
	return url
}

func TestRedisStore_Contract(t *testing.T) {
	url := skipIfNoRedis(t)

	opts := DefaultRedisOptions()
	opts.URL = url
	opts.Prefix = "vitrine-test:"
	s, err := NewRedisStore(opts)
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	keys, _ := s.Keys(ctx, "")
	for _, k := range keys {
		_ = s.Delete(ctx, k)
	}

	runStoreContract(t, s)
}

func TestNewRedisStore_RequiresURL(t *testing.T) {
	if _, err := NewRedisStore(RedisOptions{}); err == nil {
		t.Error("expected error for empty URL")
	}
}

func TestEscapeGlob(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"vitrine.", "vitrine."},
		{"a*b", `a\*b`},
		{"[x]?", `\[x\]\?`},
	}
	for _, tt := range tests {
		if got := escapeGlob(tt.in); got != tt.want {
			t.Errorf("escapeGlob(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
