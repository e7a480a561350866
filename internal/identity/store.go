// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package identity manages the PIN-holding admin identities and the
// persisted reference to the currently logged-in one.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/model"
	"github.com/olegiv/vitrine-go/internal/util"
)

// Error is an identity store error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidPIN is returned when no identity matches a PIN or when a
	// new PIN is not exactly four digits.
	ErrInvalidPIN Error = "invalid PIN"

	// ErrDefaultIdentity is returned when an operation would delete or
	// demote the built-in owner identity.
	ErrDefaultIdentity Error = "the default identity cannot be modified this way"

	// ErrNotFound is returned when an identity id is unknown.
	ErrNotFound Error = "identity not found"
)

// Store is the session and identity store.
//
// The session document records the identity of the most recent login.
// The HTTP API keeps one cookie session per admin and treats this
// document as informational only.
//
// Authentication is not throttled here; callers exposing Authenticate to
// the network are expected to rate limit it.
type Store struct {
	docs     docstore.Store
	keys     docstore.Keys
	verifier IdentityVerifier
	logger   *slog.Logger
}

// NewStore creates an identity store. A nil verifier selects
// PlainPINVerifier and a nil logger selects slog.Default().
func NewStore(docs docstore.Store, keys docstore.Keys, verifier IdentityVerifier, logger *slog.Logger) *Store {
	if verifier == nil {
		verifier = PlainPINVerifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{docs: docs, keys: keys, verifier: verifier, logger: logger}
}

// List returns all identities in stored order. When nothing is stored yet
// the list holds only the default identity. A stored list lacking the
// default identity gets it prepended.
func (s *Store) List(ctx context.Context) ([]model.AdminIdentity, error) {
	list, err := docstore.GetJSON[[]model.AdminIdentity](ctx, s.docs, s.keys.AdminsList())
	if err != nil && !errors.Is(err, docstore.ErrNotFound) {
		return nil, fmt.Errorf("loading identities: %w", err)
	}

	for _, a := range list {
		if a.IsDefault() {
			return list, nil
		}
	}

	def, err := s.defaultIdentity()
	if err != nil {
		return nil, err
	}
	return append([]model.AdminIdentity{def}, list...), nil
}

func (s *Store) defaultIdentity() (model.AdminIdentity, error) {
	def := model.DefaultAdmin()
	sealed, err := s.verifier.Seal(def.PIN)
	if err != nil {
		return model.AdminIdentity{}, fmt.Errorf("sealing default PIN: %w", err)
	}
	def.PIN = sealed
	return def, nil
}

func (s *Store) save(ctx context.Context, list []model.AdminIdentity) error {
	if err := docstore.SetJSON(ctx, s.docs, s.keys.AdminsList(), list); err != nil {
		return fmt.Errorf("saving identities: %w", err)
	}
	return nil
}

// Authenticate finds the first identity, in list order, whose PIN matches
// pin and records it as the current session.
func (s *Store) Authenticate(ctx context.Context, pin string) (model.AdminIdentity, error) {
	if pin == "" {
		return model.AdminIdentity{}, ErrInvalidPIN
	}

	list, err := s.List(ctx)
	if err != nil {
		return model.AdminIdentity{}, err
	}

	for _, a := range list {
		if s.verifier.Match(a.PIN, pin) {
			if err := docstore.SetString(ctx, s.docs, s.keys.SessionID(), a.ID); err != nil {
				return model.AdminIdentity{}, fmt.Errorf("saving session: %w", err)
			}
			return a, nil
		}
	}
	return model.AdminIdentity{}, ErrInvalidPIN
}

// AddIdentity appends a new identity. PINs shared with existing identities
// are accepted; the earlier identity keeps winning Authenticate.
func (s *Store) AddIdentity(ctx context.Context, name, email, pin string, isSuper bool) (model.AdminIdentity, error) {
	if !ValidPIN(pin) {
		return model.AdminIdentity{}, ErrInvalidPIN
	}

	list, err := s.List(ctx)
	if err != nil {
		return model.AdminIdentity{}, err
	}

	for _, a := range list {
		if s.verifier.Match(a.PIN, pin) {
			s.logger.Warn("new identity shares a PIN with an existing one", "existing_id", a.ID)
			break
		}
	}

	sealed, err := s.verifier.Seal(pin)
	if err != nil {
		return model.AdminIdentity{}, fmt.Errorf("sealing PIN: %w", err)
	}

	a := model.AdminIdentity{
		ID:           util.NewID("admin"),
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		PIN:          sealed,
		IsSuperAdmin: isSuper,
	}
	if err := s.save(ctx, append(list, a)); err != nil {
		return model.AdminIdentity{}, err
	}
	return a, nil
}

// RemoveIdentity deletes the identity with the given id. Unknown ids are a
// no-op. Removing the current session's identity logs it out.
func (s *Store) RemoveIdentity(ctx context.Context, id string) error {
	if id == model.DefaultAdminID {
		return ErrDefaultIdentity
	}

	list, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.AdminIdentity, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	if err := s.save(ctx, kept); err != nil {
		return err
	}

	return s.LogoutIdentity(ctx, id)
}

// ToggleSuperAdmin flips the super-admin flag of an identity.
func (s *Store) ToggleSuperAdmin(ctx context.Context, id string) error {
	if id == model.DefaultAdminID {
		return ErrDefaultIdentity
	}

	list, err := s.List(ctx)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == id {
			list[i].IsSuperAdmin = !list[i].IsSuperAdmin
			return s.save(ctx, list)
		}
	}
	return ErrNotFound
}

// RotatePIN replaces the PIN of identity id when oldPIN matches its
// current PIN. It returns false, leaving the PIN unchanged, when the id is
// unknown or oldPIN does not match.
func (s *Store) RotatePIN(ctx context.Context, id, oldPIN, newPIN string) (bool, error) {
	if !ValidPIN(newPIN) {
		return false, ErrInvalidPIN
	}

	list, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		if !s.verifier.Match(list[i].PIN, oldPIN) {
			return false, nil
		}
		sealed, err := s.verifier.Seal(newPIN)
		if err != nil {
			return false, fmt.Errorf("sealing PIN: %w", err)
		}
		list[i].PIN = sealed
		if err := s.save(ctx, list); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Logout clears the current session.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.docs.Delete(ctx, s.keys.SessionID()); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// LogoutIdentity clears the current session only when it belongs to id.
func (s *Store) LogoutIdentity(ctx context.Context, id string) error {
	current, err := s.currentID(ctx)
	if err != nil {
		return err
	}
	if current != id {
		return nil
	}
	return s.Logout(ctx)
}

// Current returns the identity of the current session. A session pointing
// at a deleted identity reports false but is left in place.
func (s *Store) Current(ctx context.Context) (model.AdminIdentity, bool, error) {
	id, err := s.currentID(ctx)
	if err != nil || id == "" {
		return model.AdminIdentity{}, false, err
	}
	return s.Find(ctx, id)
}

// Find returns the identity with the given id.
func (s *Store) Find(ctx context.Context, id string) (model.AdminIdentity, bool, error) {
	list, err := s.List(ctx)
	if err != nil {
		return model.AdminIdentity{}, false, err
	}
	for _, a := range list {
		if a.ID == id {
			return a, true, nil
		}
	}
	return model.AdminIdentity{}, false, nil
}

func (s *Store) currentID(ctx context.Context) (string, error) {
	id, err := docstore.GetString(ctx, s.docs, s.keys.SessionID())
	if errors.Is(err, docstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading session: %w", err)
	}
	return id, nil
}
