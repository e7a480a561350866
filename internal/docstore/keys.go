// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docstore

// DefaultNamespace is the key namespace used when none is configured.
const DefaultNamespace = "vitrine"

// Document names under the namespace.
const (
	DocAdminsList     = "admins-list"
	DocSessionID      = "admin-session-id"
	DocAbout          = "about"
	DocGiftConfig     = "gift-config"
	DocServices       = "services"
	DocPortfolio      = "portfolio"
	DocShopItems      = "shop-items"
	DocFormations     = "formations"
	DocTestimonials   = "testimonials"
	DocProducts       = "products"
	DocSocialLinks    = "social-links"
	DocCopyrightText  = "copyright-text"
	DocPrivacyPolicy  = "privacy-policy"
	DocSalesTerms     = "sales-terms"
	DocGiftUnlocked   = "gift-unlocked"
	DocProfileImage   = "profile-image"
	DocWhatsAppNumber = "whatsapp-number"

	orderedPrefix  = "ordered-"
	codeUsedPrefix = "code-used-"
)

// Keys builds persisted document keys of the form "<ns>.<name>".
type Keys struct {
	ns string
}

// NewKeys returns a key builder for namespace ns.
func NewKeys(ns string) Keys {
	if ns == "" {
		ns = DefaultNamespace
	}
	return Keys{ns: ns}
}

// Namespace returns the configured namespace.
func (k Keys) Namespace() string { return k.ns }

// Prefix returns the prefix shared by every key, "<ns>.".
func (k Keys) Prefix() string { return k.ns + "." }

// Domain returns the key of a named document.
func (k Keys) Domain(name string) string { return k.Prefix() + name }

// AdminsList is the key of the admin identity list.
func (k Keys) AdminsList() string { return k.Domain(DocAdminsList) }

// SessionID is the key of the current session reference.
func (k Keys) SessionID() string { return k.Domain(DocSessionID) }

// Ordered is the key of the "ordered" flag of a purchasable item.
func (k Keys) Ordered(itemID string) string { return k.Domain(orderedPrefix + itemID) }

// CodeUsed is the key of the last code consumed for a purchasable item.
func (k Keys) CodeUsed(itemID string) string { return k.Domain(codeUsedPrefix + itemID) }

// GiftUnlocked is the key of the gift unlock flag.
func (k Keys) GiftUnlocked() string { return k.Domain(DocGiftUnlocked) }

// ProfileImage is the key of the hero profile image.
func (k Keys) ProfileImage() string { return k.Domain(DocProfileImage) }

// WhatsAppNumber is the key of the owner's WhatsApp number.
func (k Keys) WhatsAppNumber() string { return k.Domain(DocWhatsAppNumber) }

// TrueSentinel is the value written for boolean flags.
const TrueSentinel = "true"
