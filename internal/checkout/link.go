// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package checkout

import (
	"net/url"
	"strings"
)

// DefaultWhatsAppNumber is the owner's number used when none is configured.
const DefaultWhatsAppNumber = "22896495419"

// Digits keeps only the ASCII digits of a phone number.
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeComponent percent-encodes s like a URI component: spaces become
// %20, not "+".
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// WhatsAppLink builds https://wa.me/<digits>?text=<message>. An empty
// number yields a number-less share link.
func WhatsAppLink(number, message string) string {
	link := "https://wa.me/" + Digits(number)
	if message == "" {
		return link
	}
	return link + "?text=" + EncodeComponent(message)
}

// Share platforms supported by ShareLink.
const (
	ShareWhatsApp = "whatsapp"
	ShareFacebook = "facebook"
	ShareLinkedIn = "linkedin"
	ShareTwitter  = "twitter"
)

// ShareLink returns the share URL of a product page on platform, or ""
// for an unknown platform.
func ShareLink(platform, productTitle, pageURL string) string {
	text := "Découvre ce produit digital : " + productTitle
	switch platform {
	case ShareWhatsApp:
		return WhatsAppLink("", text+" "+pageURL)
	case ShareFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + EncodeComponent(pageURL)
	case ShareLinkedIn:
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + EncodeComponent(pageURL)
	case ShareTwitter:
		return "https://twitter.com/intent/tweet?text=" + EncodeComponent(text) + "&url=" + EncodeComponent(pageURL)
	}
	return ""
}

// SharePlatforms lists the platforms ShareLink knows, in display order.
var SharePlatforms = []string{ShareWhatsApp, ShareFacebook, ShareLinkedIn, ShareTwitter}

// ShareLinks returns the share URL of a product page on every platform.
func ShareLinks(productTitle, pageURL string) map[string]string {
	out := make(map[string]string, len(SharePlatforms))
	for _, p := range SharePlatforms {
		out[p] = ShareLink(p, productTitle, pageURL)
	}
	return out
}
