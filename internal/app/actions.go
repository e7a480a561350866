// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package app

import (
	"context"
	"net/url"
	"strings"

	"github.com/olegiv/vitrine-go/internal/checkout"
	"github.com/olegiv/vitrine-go/internal/content"
	"github.com/olegiv/vitrine-go/internal/model"
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &content.ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// PlaceOrder validates the buyer form, marks item itemID ordered and
// returns the WhatsApp order link.
func (a *App) PlaceOrder(ctx context.Context, itemID string, buyer model.BuyerInfo) (checkout.Link, error) {
	item, err := a.Content.Purchasable(ctx, itemID)
	if err != nil {
		return checkout.Link{}, err
	}

	for _, f := range []struct{ name, value string }{
		{"lastName", buyer.LastName},
		{"firstName", buyer.FirstName},
		{"phone", buyer.Phone},
	} {
		if err := required(f.name, f.value); err != nil {
			return checkout.Link{}, err
		}
	}
	if buyer.PaymentMethod == "" {
		buyer.PaymentMethod = model.PaymentTMoney
	}
	if !model.IsPaymentMethod(buyer.PaymentMethod) {
		return checkout.Link{}, &content.ValidationError{Field: "paymentMethod", Message: "unknown payment method"}
	}

	return a.Checkout.SubmitOrder(ctx, item.OrderSummary(), buyer)
}

// UnlockResult is the outcome of a code entry.
type UnlockResult struct {
	Unlocked     bool   `json:"unlocked"`
	DownloadLink string `json:"downloadLink,omitempty"`
}

// Unlock checks code against item id.
func (a *App) Unlock(ctx context.Context, id, code string) (UnlockResult, error) {
	ok, err := a.Tracker.AttemptUnlock(ctx, id, code)
	if err != nil || !ok {
		return UnlockResult{}, err
	}
	link, _, err := a.Tracker.DownloadLink(ctx, id)
	if err != nil {
		return UnlockResult{}, err
	}
	return UnlockResult{Unlocked: true, DownloadLink: link}, nil
}

// UnlockGift checks code against the gift configuration.
func (a *App) UnlockGift(ctx context.Context, code string) (UnlockResult, error) {
	ok, err := a.Tracker.UnlockGift(ctx, code)
	if err != nil || !ok {
		return UnlockResult{}, err
	}
	st, err := a.Tracker.Gift(ctx)
	if err != nil {
		return UnlockResult{}, err
	}
	return UnlockResult{Unlocked: true, DownloadLink: st.DownloadLink}, nil
}

// RequestGift returns the WhatsApp link asking for the gift.
func (a *App) RequestGift(ctx context.Context, firstName, lastName string) (checkout.Link, error) {
	if err := required("firstName", firstName); err != nil {
		return checkout.Link{}, err
	}
	if err := required("lastName", lastName); err != nil {
		return checkout.Link{}, err
	}
	cfg, err := a.Content.GiftConfig(ctx)
	if err != nil {
		return checkout.Link{}, err
	}
	if !cfg.Enabled {
		return checkout.Link{}, &content.ValidationError{Field: "gift", Message: "is not available"}
	}
	return a.Checkout.GiftRequest(ctx, firstName, lastName, cfg.Title)
}

// Review is a visitor-submitted testimonial.
type Review struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// ReviewResult holds the stored testimonial and the owner notice link.
type ReviewResult struct {
	Testimonial model.Testimonial `json:"testimonial"`
	Notice      checkout.Link     `json:"notice"`
}

// SubmitReview stores r as a testimonial and returns the WhatsApp link
// notifying the owner.
func (a *App) SubmitReview(ctx context.Context, r Review) (ReviewResult, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return ReviewResult{}, &content.ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	t, err := a.Content.Testimonials.Create(ctx, model.Testimonial{
		Name:    strings.TrimSpace(r.Name),
		Role:    strings.TrimSpace(r.Role),
		Content: strings.TrimSpace(r.Content),
	})
	if err != nil {
		return ReviewResult{}, err
	}

	notice, err := a.Checkout.ReviewNotice(ctx, t.Name, r.Rating, t.Content)
	if err != nil {
		return ReviewResult{}, err
	}
	return ReviewResult{Testimonial: t, Notice: notice}, nil
}

// OrderProduct returns the WhatsApp link for affiliate product id.
func (a *App) OrderProduct(ctx context.Context, id string) (checkout.Link, error) {
	p, err := a.Content.Products.Get(ctx, id)
	if err != nil {
		return checkout.Link{}, err
	}
	return a.Checkout.ProductOrder(ctx, p.Title)
}

// ShareProduct returns the share URLs of affiliate product id shown on
// the page at pageURL, keyed by platform.
func (a *App) ShareProduct(ctx context.Context, id, pageURL string) (map[string]string, error) {
	if err := required("url", pageURL); err != nil {
		return nil, err
	}
	u, err := url.Parse(pageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &content.ValidationError{Field: "url", Message: "must be an absolute http(s) URL"}
	}
	p, err := a.Content.Products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return checkout.ShareLinks(p.Title, u.String()), nil
}

// Ask relays a chat prompt to the assistant.
func (a *App) Ask(ctx context.Context, prompt string, history []model.ChatMessage) (string, error) {
	if err := required("prompt", prompt); err != nil {
		return "", err
	}
	return a.Chat.Ask(ctx, prompt, history), nil
}
