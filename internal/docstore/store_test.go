// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docstore

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// runStoreContract exercises behaviour every backend must share.
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "ns.missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "ns.a", []byte("1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, "ns.b", []byte(`{"x":2}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, "other.c", []byte("3")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, err := s.Get(ctx, "ns.b")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(val) != `{"x":2}` {
		t.Errorf("Get = %q, want %q", val, `{"x":2}`)
	}

	// Overwrite replaces the whole value
	if err := s.Set(ctx, "ns.a", []byte("one")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, _ = s.Get(ctx, "ns.a")
	if string(val) != "one" {
		t.Errorf("after overwrite Get = %q, want %q", val, "one")
	}

	keys, err := s.Keys(ctx, "ns.")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if want := []string{"ns.a", "ns.b"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys(ns.) = %v, want %v", keys, want)
	}

	all, err := s.Keys(ctx, "")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Keys(\"\") returned %d keys, want 3", len(all))
	}

	if err := s.Delete(ctx, "ns.a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, "ns.a"); err != nil {
		t.Errorf("Delete of absent key returned %v", err)
	}
	if _, err := s.Get(ctx, "ns.a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete error = %v, want ErrNotFound", err)
	}
}
