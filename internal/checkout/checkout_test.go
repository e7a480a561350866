// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package checkout

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"strings"
	"testing"

	"github.com/olegiv/vitrine-go/internal/model"
)

type fakeMarker struct {
	ids []string
	err error
}

func (f *fakeMarker) MarkOrdered(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.ids = append(f.ids, id)
	return nil
}

type fixedNumber string

func (n fixedNumber) Load(context.Context) (string, error) { return string(n), nil }

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		message string
		want    string
	}{
		{"plain", "22896495419", "", "https://wa.me/22896495419"},
		{"formatted number", "+228 96 49 54 19", "", "https://wa.me/22896495419"},
		{"spaces are %20", "22896495419", "Bonjour Basile", "https://wa.me/22896495419?text=Bonjour%20Basile"},
		{"reserved chars", "1", "a&b=c?", "https://wa.me/1?text=a%26b%3Dc%3F"},
		{"plus sign", "1", "1+1", "https://wa.me/1?text=1%2B1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WhatsAppLink(tt.number, tt.message); got != tt.want {
				t.Errorf("WhatsAppLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrderMessage(t *testing.T) {
	item := model.OrderItem{ID: "b1", Title: "Pack Canva", Price: "7.500 FCFA", Category: model.CategoryTool}
	buyer := model.BuyerInfo{LastName: "Agbéko", FirstName: "Kossi", Phone: "90000000", PaymentMethod: model.PaymentFlooz}

	msg := OrderMessage(item, buyer)
	if !strings.HasPrefix(msg, "Bonjour Basile, je souhaite passer une commande :\n\n") {
		t.Errorf("unexpected greeting: %q", msg)
	}
	for _, line := range []string{
		"📦 *Produit/Formation :* Pack Canva\n",
		"💰 *Prix :* 7.500 FCFA\n",
		"🏷️ *Type :* Outil\n",
		"*Nom :* AGBÉKO\n",
		"*Prénom :* Kossi\n",
		"*Tél :* 90000000\n",
		"*Paiement :* Flooz\n",
	} {
		if !strings.Contains(msg, line) {
			t.Errorf("message lacks %q", line)
		}
	}
	if strings.Contains(msg, "International") {
		t.Error("local payment labelled international")
	}
	if !strings.HasSuffix(msg, "pour obtenir mon code de déblocage.") {
		t.Errorf("unexpected closing: %q", msg)
	}
}

func TestOrderMessage_International(t *testing.T) {
	msg := OrderMessage(model.OrderItem{Title: "x"}, model.BuyerInfo{PaymentMethod: model.PaymentInternational})
	if want := "*Paiement :* Autre pays (Client International 🌍)\n"; !strings.Contains(msg, want) {
		t.Errorf("message lacks %q", want)
	}
}

func TestSubmitOrder(t *testing.T) {
	marker := &fakeMarker{}
	r := NewRelay(marker, fixedNumber("22890000000"), nil, nil)

	l, err := r.SubmitOrder(context.Background(),
		model.OrderItem{ID: "f1", Title: "Canva Mobile", Price: "15.000 FCFA", Category: model.CategoryFormation},
		model.BuyerInfo{LastName: "Doe", FirstName: "Ama", Phone: "1", PaymentMethod: model.PaymentWave},
	)
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if !slices.Equal(marker.ids, []string{"f1"}) {
		t.Errorf("marked = %v, want [f1]", marker.ids)
	}

	u, err := url.Parse(l.URL)
	if err != nil {
		t.Fatalf("parse %q: %v", l.URL, err)
	}
	if u.Host != "wa.me" || u.Path != "/22890000000" {
		t.Errorf("URL = %q, want wa.me/22890000000", l.URL)
	}
	if got := u.Query().Get("text"); got != l.Message {
		t.Errorf("text = %q, want the order message", got)
	}
}

func TestSubmitOrder_MarkFails(t *testing.T) {
	r := NewRelay(&fakeMarker{err: errors.New("disk full")}, fixedNumber("1"), nil, nil)
	if _, err := r.SubmitOrder(context.Background(), model.OrderItem{ID: "b1"}, model.BuyerInfo{}); err == nil {
		t.Error("expected the marker error")
	}
}

func TestRelay_DefaultNumber(t *testing.T) {
	r := NewRelay(&fakeMarker{}, fixedNumber(""), nil, nil)
	l, err := r.Contact(context.Background(), ContactHero)
	if err != nil {
		t.Fatalf("Contact: %v", err)
	}
	if !strings.HasPrefix(l.URL, "https://wa.me/"+DefaultWhatsAppNumber+"?text=") {
		t.Errorf("URL = %q, want the default number", l.URL)
	}
	if !strings.Contains(l.Message, "portfolio") {
		t.Errorf("Message = %q", l.Message)
	}
}

func TestGiftRequestMessage(t *testing.T) {
	got := GiftRequestMessage("Kossi", "agbéko", "E-book Offert")
	want := `Bonjour Basile ! Je m'appelle Kossi AGBÉKO. Je souhaite recevoir mon cadeau offert : "E-book Offert". Merci !`
	if got != want {
		t.Errorf("GiftRequestMessage() = %q, want %q", got, want)
	}
}

func TestReviewMessage(t *testing.T) {
	if got, want := ReviewMessage("Ama", 3, "Super"), "Nouvel avis publié sur le site :\n\nNom: Ama\nNote: ⭐⭐⭐\nCommentaire: Super"; got != want {
		t.Errorf("ReviewMessage() = %q, want %q", got, want)
	}

	tests := []struct {
		rating int
		want   string
	}{
		{9, "Note: ⭐⭐⭐⭐⭐\n"},
		{0, "Note: ⭐\n"},
	}
	for _, tt := range tests {
		if got := ReviewMessage("Ama", tt.rating, ""); !strings.Contains(got, tt.want) {
			t.Errorf("ReviewMessage(rating %d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestContactMessages(t *testing.T) {
	for _, topic := range ContactTopics() {
		m, ok := ContactMessage(topic)
		if !ok || !strings.HasPrefix(m, "Bonjour Basile") {
			t.Errorf("ContactMessage(%q) = %q, %v", topic, m, ok)
		}
	}
	if _, ok := ContactMessage("unknown"); ok {
		t.Error("unknown topic reported as known")
	}
}

func TestShareLink(t *testing.T) {
	const page = "https://basile.tg/"
	tests := []struct {
		platform string
		prefix   string
	}{
		{ShareFacebook, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fbasile.tg%2F"},
		{ShareWhatsApp, "https://wa.me/?text=D%C3%A9couvre"},
		{ShareLinkedIn, "https://www.linkedin.com/sharing/share-offsite/?url=https%3A%2F%2Fbasile.tg%2F"},
		{ShareTwitter, "https://twitter.com/intent/tweet?text=D%C3%A9couvre%20ce%20produit"},
	}
	for _, tt := range tests {
		if got := ShareLink(tt.platform, "Pack", page); !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("ShareLink(%s) = %q, want prefix %q", tt.platform, got, tt.prefix)
		}
	}
	if got := ShareLink("myspace", "Pack", page); got != "" {
		t.Errorf("ShareLink(myspace) = %q, want empty", got)
	}
}

func TestShareLinks(t *testing.T) {
	links := ShareLinks("Pack", "https://basile.tg/")
	if len(links) != len(SharePlatforms) {
		t.Fatalf("len(ShareLinks) = %d, want %d", len(links), len(SharePlatforms))
	}
	for _, p := range SharePlatforms {
		if links[p] != ShareLink(p, "Pack", "https://basile.tg/") {
			t.Errorf("links[%s] = %q", p, links[p])
		}
	}
}
