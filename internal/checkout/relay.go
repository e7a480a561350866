// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package checkout formats the WhatsApp messages and wa.me links through
// which orders, gift requests, reviews and contact requests reach the owner.
// No payment is processed here.
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/vitrine-go/internal/metrics"
	"github.com/olegiv/vitrine-go/internal/model"
)

// OrderMarker records that an item was ordered.
type OrderMarker interface {
	MarkOrdered(ctx context.Context, id string) error
}

// NumberSource returns the owner's current WhatsApp number.
type NumberSource interface {
	Load(ctx context.Context) (string, error)
}

// Link is a formatted message and the wa.me URL carrying it.
type Link struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Relay builds WhatsApp links addressed to the owner.
type Relay struct {
	marker  OrderMarker
	number  NumberSource
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewRelay creates a checkout relay. rec and logger may be nil.
func NewRelay(marker OrderMarker, number NumberSource, rec metrics.Recorder, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{marker: marker, number: number, metrics: metrics.OrNop(rec), logger: logger}
}

func (r *Relay) link(ctx context.Context, message string) (Link, error) {
	num, err := r.number.Load(ctx)
	if err != nil {
		return Link{}, fmt.Errorf("loading WhatsApp number: %w", err)
	}
	if Digits(num) == "" {
		num = DefaultWhatsAppNumber
	}
	return Link{Message: message, URL: WhatsAppLink(num, message)}, nil
}

// SubmitOrder formats the order message for item and marks it ordered.
func (r *Relay) SubmitOrder(ctx context.Context, item model.OrderItem, buyer model.BuyerInfo) (Link, error) {
	l, err := r.link(ctx, OrderMessage(item, buyer))
	if err != nil {
		return Link{}, err
	}
	if err := r.marker.MarkOrdered(ctx, item.ID); err != nil {
		return Link{}, err
	}
	r.metrics.RecordOrder(item.Category)
	r.logger.Info("order relayed", "item_id", item.ID, "payment", buyer.PaymentMethod)
	return l, nil
}

// GiftRequest formats the gift request of a visitor.
func (r *Relay) GiftRequest(ctx context.Context, firstName, lastName, giftTitle string) (Link, error) {
	return r.link(ctx, GiftRequestMessage(firstName, lastName, giftTitle))
}

// ReviewNotice formats the notice of a published review.
func (r *Relay) ReviewNotice(ctx context.Context, name string, rating int, comment string) (Link, error) {
	return r.link(ctx, ReviewMessage(name, rating, comment))
}

// ProductOrder formats the order of an affiliate product.
func (r *Relay) ProductOrder(ctx context.Context, productTitle string) (Link, error) {
	return r.link(ctx, ProductOrderMessage(productTitle))
}

// Contact returns the contact link of topic. Unknown topics use the
// default message.
func (r *Relay) Contact(ctx context.Context, topic string) (Link, error) {
	m, ok := ContactMessage(topic)
	if !ok {
		m = contactMessages[ContactDefault]
	}
	return r.link(ctx, m)
}
