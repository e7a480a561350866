// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/olegiv/vitrine-go/internal/docstore"
)

// Document is a singleton JSON document with a default value.
type Document[T any] struct {
	docs    docstore.Store
	key     string
	seed    func() T
	prepare func(T) (T, error)
}

// NewDocument creates a singleton document. prepare may be nil.
func NewDocument[T any](docs docstore.Store, key string, seed func() T, prepare func(T) (T, error)) *Document[T] {
	return &Document[T]{docs: docs, key: key, seed: seed, prepare: prepare}
}

// Key returns the document key.
func (d *Document[T]) Key() string { return d.key }

// LoadOrSeed returns the stored value, or the default when nothing is stored.
func (d *Document[T]) LoadOrSeed(ctx context.Context) (T, error) {
	v, err := docstore.GetJSON[T](ctx, d.docs, d.key)
	if errors.Is(err, docstore.ErrNotFound) {
		return d.seed(), nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("loading %s: %w", d.key, err)
	}
	return v, nil
}

// Save validates v and overwrites the document.
func (d *Document[T]) Save(ctx context.Context, v T) (T, error) {
	if d.prepare != nil {
		var err error
		if v, err = d.prepare(v); err != nil {
			return v, err
		}
	}
	if err := docstore.SetJSON(ctx, d.docs, d.key, v); err != nil {
		return v, fmt.Errorf("saving %s: %w", d.key, err)
	}
	return v, nil
}

// Text is a plain-text document with a default value.
type Text struct {
	docs docstore.Store
	key  string
	def  string
}

// NewText creates a plain-text document.
func NewText(docs docstore.Store, key, def string) *Text {
	return &Text{docs: docs, key: key, def: def}
}

// Key returns the document key.
func (t *Text) Key() string { return t.key }

// Load returns the stored text or the default.
func (t *Text) Load(ctx context.Context) (string, error) {
	s, err := docstore.GetString(ctx, t.docs, t.key)
	if errors.Is(err, docstore.ErrNotFound) {
		return t.def, nil
	}
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", t.key, err)
	}
	return s, nil
}

// Save overwrites the text.
func (t *Text) Save(ctx context.Context, s string) error {
	if err := docstore.SetString(ctx, t.docs, t.key, s); err != nil {
		return fmt.Errorf("saving %s: %w", t.key, err)
	}
	return nil
}

// Reset deletes the stored text so the default applies again.
func (t *Text) Reset(ctx context.Context) error {
	return t.docs.Delete(ctx, t.key)
}
