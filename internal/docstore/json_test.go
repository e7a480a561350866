// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docstore

import (
	"context"
	"errors"
	"testing"
)

type sample struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := GetJSON[[]sample](ctx, s, "ns.list"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetJSON(missing) error = %v, want ErrNotFound", err)
	}

	in := []sample{{ID: "b1", Title: "Pack"}}
	if err := SetJSON(ctx, s, "ns.list", in); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}

	raw, _ := s.Get(ctx, "ns.list")
	if string(raw) != `[{"id":"b1","title":"Pack"}]` {
		t.Errorf("raw document = %s", raw)
	}

	out, err := GetJSON[[]sample](ctx, s, "ns.list")
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if len(out) != 1 || out[0].Title != "Pack" {
		t.Errorf("GetJSON = %+v", out)
	}
}

func TestGetJSON_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Set(ctx, "ns.list", []byte("not json"))

	_, err := GetJSON[[]sample](ctx, s, "ns.list")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("GetJSON(corrupt) error = %v, want decode error", err)
	}
}

func TestKeys(t *testing.T) {
	k := NewKeys("")
	tests := []struct {
		got, want string
	}{
		{k.Prefix(), "vitrine."},
		{k.AdminsList(), "vitrine.admins-list"},
		{k.SessionID(), "vitrine.admin-session-id"},
		{k.Ordered("b1"), "vitrine.ordered-b1"},
		{k.CodeUsed("b1"), "vitrine.code-used-b1"},
		{k.GiftUnlocked(), "vitrine.gift-unlocked"},
		{k.Domain(DocShopItems), "vitrine.shop-items"},
		{NewKeys("basile").WhatsAppNumber(), "basile.whatsapp-number"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("key = %q, want %q", tt.got, tt.want)
		}
	}
}
