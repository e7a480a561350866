// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/model"
	"github.com/olegiv/vitrine-go/internal/util"
)

// UpdateHook runs after a record was replaced and the collection saved.
type UpdateHook[T any] func(ctx context.Context, old, updated T) error

// CollectionConfig describes one persisted collection.
type CollectionConfig[T any] struct {
	// Key is the document key holding the JSON array.
	Key string

	// IDPrefix is prepended to generated record ids.
	IDPrefix string

	// Seed returns the records used while nothing is stored.
	Seed func() []T

	// Append adds new records at the end instead of the front.
	Append bool

	// Prepare normalizes a submitted record and validates it.
	Prepare func(T) (T, error)
}

// Collection is an ordered list of records stored as a single document.
// Every mutation rewrites the whole document.
type Collection[T model.Record[T]] struct {
	docs  docstore.Store
	cfg   CollectionConfig[T]
	mu    sync.Mutex
	hooks []UpdateHook[T]
}

// NewCollection creates a collection backed by docs.
func NewCollection[T model.Record[T]](docs docstore.Store, cfg CollectionConfig[T]) *Collection[T] {
	return &Collection[T]{docs: docs, cfg: cfg}
}

// Key returns the document key of the collection.
func (c *Collection[T]) Key() string { return c.cfg.Key }

// OnUpdate registers a hook called after every successful Update.
func (c *Collection[T]) OnUpdate(h UpdateHook[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, h)
}

// LoadOrSeed returns the stored records or, when none are stored, the seed.
// Reading never writes the seed back.
func (c *Collection[T]) LoadOrSeed(ctx context.Context) ([]T, error) {
	list, err := docstore.GetJSON[[]T](ctx, c.docs, c.cfg.Key)
	if errors.Is(err, docstore.ErrNotFound) {
		if c.cfg.Seed == nil {
			return []T{}, nil
		}
		return c.cfg.Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.cfg.Key, err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	list, err := c.LoadOrSeed(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(list, id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return list[i], nil
}

// Create stores rec under a newly generated id and returns it.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	rec, err := c.prepare(rec)
	if err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	list, err := c.LoadOrSeed(ctx)
	if err != nil {
		return zero, err
	}

	rec = rec.WithRecordID(util.NewID(c.cfg.IDPrefix))
	if c.cfg.Append {
		list = append(list, rec)
	} else {
		list = append([]T{rec}, list...)
	}
	if err := c.save(ctx, list); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update replaces the record with the given id by rec, keeping the id.
func (c *Collection[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	rec, err := c.prepare(rec)
	if err != nil {
		return zero, err
	}

	c.mu.Lock()
	list, err := c.LoadOrSeed(ctx)
	if err != nil {
		c.mu.Unlock()
		return zero, err
	}
	i := indexOf(list, id)
	if i < 0 {
		c.mu.Unlock()
		return zero, ErrNotFound
	}

	old := list[i]
	rec = rec.WithRecordID(id)
	list[i] = rec
	if err := c.save(ctx, list); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	hooks := slices.Clone(c.hooks)
	c.mu.Unlock()

	for _, h := range hooks {
		if err := h(ctx, old, rec); err != nil {
			return rec, fmt.Errorf("running update hook for %s: %w", id, err)
		}
	}
	return rec, nil
}

// Delete removes the record with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, err := c.LoadOrSeed(ctx)
	if err != nil {
		return err
	}
	i := indexOf(list, id)
	if i < 0 {
		return ErrNotFound
	}
	return c.save(ctx, slices.Delete(list, i, i+1))
}

func (c *Collection[T]) prepare(rec T) (T, error) {
	if c.cfg.Prepare == nil {
		return rec, nil
	}
	return c.cfg.Prepare(rec)
}

func (c *Collection[T]) save(ctx context.Context, list []T) error {
	if err := docstore.SetJSON(ctx, c.docs, c.cfg.Key, list); err != nil {
		return fmt.Errorf("saving %s: %w", c.cfg.Key, err)
	}
	return nil
}

func indexOf[T model.Record[T]](list []T, id string) int {
	return slices.IndexFunc(list, func(r T) bool { return r.RecordID() == id })
}
