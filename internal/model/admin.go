// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the vitrine domain types: admin identities, content
// records, gift configuration, orders and chat messages.
package model

// DefaultAdminID is the id of the built-in owner identity.
const DefaultAdminID = "default"

// AdminIdentity is a PIN-holding editor of the site.
type AdminIdentity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PIN          string `json:"pin"`
	IsSuperAdmin bool   `json:"isSuperAdmin,omitempty"`
}

// IsDefault reports whether a is the built-in owner identity.
func (a AdminIdentity) IsDefault() bool {
	return a.ID == DefaultAdminID
}

// DefaultAdmin returns the owner identity seeded on first run.
func DefaultAdmin() AdminIdentity {
	return AdminIdentity{
		ID:           DefaultAdminID,
		Name:         "Basile",
		Email:        "contact@basilekadjolo.com",
		PIN:          "1234",
		IsSuperAdmin: true,
	}
}

// AdminView is an AdminIdentity without its PIN, safe to send to clients.
type AdminView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
	IsDefault    bool   `json:"isDefault"`
}

// View returns the PIN-less representation of a.
func (a AdminIdentity) View() AdminView {
	return AdminView{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		IsSuperAdmin: a.IsSuperAdmin,
		IsDefault:    a.IsDefault(),
	}
}
