// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package checkout

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olegiv/vitrine-go/internal/model"
)

// upper upper-cases s with French rules. A Caser must not be shared
// between goroutines.
func upper(s string) string {
	return cases.Upper(language.French).String(s)
}

// Contact topics with a fixed opening message.
const (
	ContactDefault   = "default"
	ContactHero      = "hero"
	ContactAbout     = "about"
	ContactAssistant = "assistant"
	ContactFooter    = "footer"
)

var contactMessages = map[string]string{
	ContactDefault:   "Bonjour Basile, je suis intéressé par vos services digitaux.",
	ContactHero:      "Bonjour Basile, je viens de voir votre portfolio et je souhaite discuter de mes projets digitaux avec vous.",
	ContactAbout:     "Bonjour Basile, je viens de lire votre parcours et je souhaite vous contacter pour une collaboration.",
	ContactAssistant: "Bonjour Basile, je discute actuellement avec votre Assistant IA et j'aimerais approfondir mes besoins avec vous en direct.",
	ContactFooter:    "Bonjour Basile, je souhaite bénéficier d'un boost digital pour mon entreprise. Pouvons-nous en discuter ?",
}

// ContactMessage returns the fixed message of topic.
func ContactMessage(topic string) (string, bool) {
	m, ok := contactMessages[topic]
	return m, ok
}

// ContactTopics lists the known contact topics.
func ContactTopics() []string {
	return []string{ContactDefault, ContactHero, ContactAbout, ContactAssistant, ContactFooter}
}

// OrderMessage formats the WhatsApp order message for item and buyer.
func OrderMessage(item model.OrderItem, buyer model.BuyerInfo) string {
	payment := buyer.PaymentMethod
	if payment == model.PaymentInternational {
		payment += " (Client International 🌍)"
	}

	var b strings.Builder
	b.WriteString("Bonjour Basile, je souhaite passer une commande :\n\n")
	fmt.Fprintf(&b, "📦 *Produit/Formation :* %s\n", item.Title)
	fmt.Fprintf(&b, "💰 *Prix :* %s\n", item.Price)
	fmt.Fprintf(&b, "🏷️ *Type :* %s\n\n", item.Category)
	b.WriteString("--- 👤 *INFOS CLIENT* ---\n")
	fmt.Fprintf(&b, "*Nom :* %s\n", upper(buyer.LastName))
	fmt.Fprintf(&b, "*Prénom :* %s\n", buyer.FirstName)
	fmt.Fprintf(&b, "*Tél :* %s\n", buyer.Phone)
	fmt.Fprintf(&b, "*Paiement :* %s\n\n", payment)
	b.WriteString("Merci de me confirmer la réception et la marche à suivre pour obtenir mon code de déblocage.")
	return b.String()
}

// GiftRequestMessage formats the message asking for the gift code.
func GiftRequestMessage(firstName, lastName, giftTitle string) string {
	return fmt.Sprintf("Bonjour Basile ! Je m'appelle %s %s. Je souhaite recevoir mon cadeau offert : \"%s\". Merci !",
		firstName, upper(lastName), giftTitle)
}

// ReviewMessage formats the notice sent when a review is published.
// rating is clamped to 1..5 stars.
func ReviewMessage(name string, rating int, comment string) string {
	rating = max(1, min(rating, 5))
	return fmt.Sprintf("Nouvel avis publié sur le site :\n\nNom: %s\nNote: %s\nCommentaire: %s",
		name, strings.Repeat("⭐", rating), comment)
}

// ProductOrderMessage formats the short order message of an affiliate product.
func ProductOrderMessage(productTitle string) string {
	return "Je souhaite commander : " + productTitle
}
