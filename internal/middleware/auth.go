// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/vitrine-go/internal/model"
	"github.com/olegiv/vitrine-go/internal/session"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAdmin holds the authenticated model.AdminIdentity.
const ContextKeyAdmin ContextKey = "admin"

// IdentityFinder resolves an identity by id.
type IdentityFinder interface {
	Find(ctx context.Context, id string) (model.AdminIdentity, bool, error)
}

// RequireAdmin rejects requests without a session bound to an existing
// identity. The identity is stored in the request context.
func RequireAdmin(sm *scs.SessionManager, identities IdentityFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := session.AdminID(r.Context(), sm)
			if id == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			admin, ok, err := identities.Find(r.Context(), id)
			if err != nil {
				slog.Error("loading session identity", "error", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal error")
				return
			}
			if !ok {
				// The identity was removed since login.
				_ = sm.Destroy(r.Context())
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin rejects admins without the super-admin flag. It must
// run after RequireAdmin.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := GetAdmin(r)
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !admin.IsSuperAdmin {
			writeJSONError(w, http.StatusForbidden, "Super admin required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetAdmin returns the authenticated identity from the request context.
func GetAdmin(r *http.Request) (model.AdminIdentity, bool) {
	admin, ok := r.Context().Value(ContextKeyAdmin).(model.AdminIdentity)
	return admin, ok
}

// WithAdmin returns ctx carrying admin. Used by tests and internal callers.
func WithAdmin(ctx context.Context, admin model.AdminIdentity) context.Context {
	return context.WithValue(ctx, ContextKeyAdmin, admin)
}
