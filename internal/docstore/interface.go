// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package docstore provides the persisted key/value document store that
// every vitrine component reads from and writes to.
package docstore

import "context"

// Store is a flat key/value store of raw serialized documents.
//
// All writers replace whole documents; there is no versioning or
// compare-and-swap. This is only safe under the single-writer assumption
// (one admin editing one deployment at a time). Supporting concurrent
// editors would require a merge or versioned last-writer-wins scheme at
// this boundary.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the raw value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every key starting with prefix, sorted ascending.
	// An empty prefix matches all keys.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// Error represents an error type for document store operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates the key does not exist.
	ErrNotFound Error = "document not found"

	// ErrClosed indicates the store has been closed.
	ErrClosed Error = "document store closed"
)
