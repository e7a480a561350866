// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package app

import (
	"context"
	"fmt"

	"github.com/olegiv/vitrine-go/internal/checkout"
	"github.com/olegiv/vitrine-go/internal/content"
	"github.com/olegiv/vitrine-go/internal/entitlement"
	"github.com/olegiv/vitrine-go/internal/model"
)

// ShopItemView is a shop item as shown to visitors. The secret code is
// never set and the download link only once unlocked.
type ShopItemView struct {
	model.ShopItem
	State entitlement.State `json:"state"`
}

// FormationView is a formation as shown to visitors.
type FormationView struct {
	model.Formation
	State entitlement.State `json:"state"`
}

// Site is the public page model.
type Site struct {
	ProfileImage        string                `json:"profileImage"`
	Services            []model.Service       `json:"services"`
	Portfolio           []model.Project       `json:"portfolio"`
	PortfolioCategories []string              `json:"portfolioCategories"`
	ShopItems           []ShopItemView        `json:"shopItems"`
	ShopCategories      []string              `json:"shopCategories"`
	Formations          []FormationView       `json:"formations"`
	Testimonials        []model.Testimonial   `json:"testimonials"`
	Products            []model.Product       `json:"products"`
	About               model.AboutData       `json:"about"`
	SocialLinks         []model.SocialLink    `json:"socialLinks"`
	Gift                entitlement.GiftState `json:"gift"`
	Copyright           string                `json:"copyright"`
	WhatsAppNumber      string                `json:"whatsappNumber"`
	Contact             map[string]string     `json:"contact"`
	PaymentMethods      []model.PaymentMethod `json:"paymentMethods"`
}

// SiteFilter narrows the public page model. Empty fields and the "all"
// values of each category list keep everything.
type SiteFilter struct {
	PortfolioCategory string
	ShopCategory      string
}

// Site assembles the public page model.
func (a *App) Site(ctx context.Context, f SiteFilter) (*Site, error) {
	c := a.Content
	s := &Site{
		PortfolioCategories: content.PortfolioCategories,
		ShopCategories:      append([]string{model.CategoryAll}, model.ShopCategories...),
		PaymentMethods:      model.PaymentMethods,
		Contact:             make(map[string]string),
	}

	var err error
	if s.ProfileImage, err = c.ProfileImage.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading profile image: %w", err)
	}
	if s.Services, err = c.Services.LoadOrSeed(ctx); err != nil {
		return nil, err
	}
	if s.Portfolio, err = c.Portfolio.LoadOrSeed(ctx); err != nil {
		return nil, err
	}
	s.Portfolio = content.FilterPortfolio(s.Portfolio, f.PortfolioCategory)
	if s.Testimonials, err = c.Testimonials.LoadOrSeed(ctx); err != nil {
		return nil, err
	}
	if s.Products, err = c.Products.LoadOrSeed(ctx); err != nil {
		return nil, err
	}
	if s.About, err = c.About.LoadOrSeed(ctx); err != nil {
		return nil, err
	}
	if s.SocialLinks, err = c.SocialLinks.LoadOrSeed(ctx); err != nil {
		return nil, err
	}
	if s.Gift, err = a.Tracker.Gift(ctx); err != nil {
		return nil, err
	}
	if s.Copyright, err = c.Copyright.Load(ctx); err != nil {
		return nil, err
	}
	if s.WhatsAppNumber, err = c.WhatsAppNumber.Load(ctx); err != nil {
		return nil, err
	}
	if s.ShopItems, err = a.shopViews(ctx, f.ShopCategory); err != nil {
		return nil, err
	}
	if s.Formations, err = a.formationViews(ctx); err != nil {
		return nil, err
	}

	for _, topic := range checkout.ContactTopics() {
		link, err := a.Checkout.Contact(ctx, topic)
		if err != nil {
			return nil, err
		}
		s.Contact[topic] = link.URL
	}
	return s, nil
}

func (a *App) shopViews(ctx context.Context, category string) ([]ShopItemView, error) {
	items, err := a.Content.ShopItems.LoadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	items = content.FilterShop(items, category)
	out := make([]ShopItemView, 0, len(items))
	for _, it := range items {
		st, err := a.Tracker.StateOf(ctx, it)
		if err != nil {
			return nil, err
		}
		it.SecretCode = ""
		if st != entitlement.StateUnlocked {
			it.DownloadLink = ""
		}
		out = append(out, ShopItemView{ShopItem: it, State: st})
	}
	return out, nil
}

func (a *App) formationViews(ctx context.Context) ([]FormationView, error) {
	list, err := a.Content.Formations.LoadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FormationView, 0, len(list))
	for _, f := range list {
		st, err := a.Tracker.StateOf(ctx, f)
		if err != nil {
			return nil, err
		}
		f.SecretCode = ""
		if st != entitlement.StateUnlocked {
			f.DownloadLink = ""
		}
		out = append(out, FormationView{Formation: f, State: st})
	}
	return out, nil
}
