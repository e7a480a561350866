// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session manages the admin cookie session.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

const adminIDKey = "admin_id"

// New creates a session manager. Sessions are kept in the sessions table of
// db when it is non-nil, in memory otherwise.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	if db != nil {
		sm.Store = sqlite3store.New(db)
	} else {
		sm.Store = memstore.New()
	}

	sm.Lifetime = 24 * time.Hour
	sm.IdleTimeout = 2 * time.Hour
	sm.Cookie.Name = "vitrine_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Secure = !isDev
	if !isDev {
		// The __Host- prefix requires Secure, Path=/ and no Domain.
		sm.Cookie.Name = "__Host-vitrine_session"
	}

	return sm
}

// Login binds the session to admin id and renews its token.
func Login(ctx context.Context, sm *scs.SessionManager, id string) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, adminIDKey, id)
	return nil
}

// Logout destroys the session.
func Logout(ctx context.Context, sm *scs.SessionManager) error {
	return sm.Destroy(ctx)
}

// AdminID returns the admin id bound to the session, or "".
func AdminID(ctx context.Context, sm *scs.SessionManager) string {
	return sm.GetString(ctx, adminIDKey)
}
