// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content holds the editable site content: record collections,
// singleton documents and plain texts, each persisted as one document.
package content

import (
	"context"
	"errors"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/model"
)

// Stores groups every content store of a site.
type Stores struct {
	Services     *Collection[model.Service]
	Portfolio    *Collection[model.Project]
	ShopItems    *Collection[model.ShopItem]
	Formations   *Collection[model.Formation]
	Testimonials *Collection[model.Testimonial]
	Products     *Collection[model.Product]

	About       *Document[model.AboutData]
	Gift        *Document[model.GiftConfig]
	SocialLinks *Document[[]model.SocialLink]

	Copyright      *Text
	PrivacyPolicy  *Text
	SalesTerms     *Text
	ProfileImage   *Text
	WhatsAppNumber *Text
}

// NewStores creates every content store. defaultWhatsApp is the number used
// until the owner stores one.
func NewStores(docs docstore.Store, keys docstore.Keys, defaultWhatsApp string) *Stores {
	return &Stores{
		Services: NewCollection(docs, CollectionConfig[model.Service]{
			Key: keys.Domain(docstore.DocServices), IDPrefix: "s",
			Seed: seedServices, Append: true, Prepare: prepareService,
		}),
		Portfolio: NewCollection(docs, CollectionConfig[model.Project]{
			Key: keys.Domain(docstore.DocPortfolio), IDPrefix: "p",
			Seed: seedPortfolio, Append: true, Prepare: prepareProject,
		}),
		ShopItems: NewCollection(docs, CollectionConfig[model.ShopItem]{
			Key: keys.Domain(docstore.DocShopItems), IDPrefix: "b",
			Seed: seedShopItems, Prepare: prepareShopItem,
		}),
		Formations: NewCollection(docs, CollectionConfig[model.Formation]{
			Key: keys.Domain(docstore.DocFormations), IDPrefix: "f",
			Seed: seedFormations, Prepare: prepareFormation,
		}),
		Testimonials: NewCollection(docs, CollectionConfig[model.Testimonial]{
			Key: keys.Domain(docstore.DocTestimonials), IDPrefix: "t",
			Seed: seedTestimonials, Prepare: prepareTestimonial,
		}),
		Products: NewCollection(docs, CollectionConfig[model.Product]{
			Key: keys.Domain(docstore.DocProducts), IDPrefix: "d",
			Seed: seedProducts, Prepare: prepareProduct,
		}),

		About:       NewDocument(docs, keys.Domain(docstore.DocAbout), seedAbout, prepareAbout),
		Gift:        NewDocument(docs, keys.Domain(docstore.DocGiftConfig), seedGift, prepareGift),
		SocialLinks: NewDocument(docs, keys.Domain(docstore.DocSocialLinks), seedSocialLinks, prepareSocialLinks),

		Copyright:      NewText(docs, keys.Domain(docstore.DocCopyrightText), DefaultCopyright),
		PrivacyPolicy:  NewText(docs, keys.Domain(docstore.DocPrivacyPolicy), DefaultPrivacyPolicy),
		SalesTerms:     NewText(docs, keys.Domain(docstore.DocSalesTerms), DefaultSalesTerms),
		ProfileImage:   NewText(docs, keys.ProfileImage(), DefaultProfileImage),
		WhatsAppNumber: NewText(docs, keys.WhatsAppNumber(), defaultWhatsApp),
	}
}

// Text document names accepted by TextByName.
const (
	TextCopyright      = "copyright"
	TextPrivacyPolicy  = "privacy"
	TextSalesTerms     = "sales-terms"
	TextProfileImage   = "profile-image"
	TextWhatsAppNumber = "whatsapp-number"
)

// TextByName returns the plain-text document with the given short name.
func (s *Stores) TextByName(name string) (*Text, bool) {
	switch name {
	case TextCopyright:
		return s.Copyright, true
	case TextPrivacyPolicy:
		return s.PrivacyPolicy, true
	case TextSalesTerms:
		return s.SalesTerms, true
	case TextProfileImage:
		return s.ProfileImage, true
	case TextWhatsAppNumber:
		return s.WhatsAppNumber, true
	}
	return nil, false
}

// Purchasable returns the shop item or formation with the given id.
// Shop items are searched first.
func (s *Stores) Purchasable(ctx context.Context, id string) (model.Purchasable, error) {
	it, err := s.ShopItems.Get(ctx, id)
	if err == nil {
		return it, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	f, err := s.Formations.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GiftConfig returns the current gift configuration.
func (s *Stores) GiftConfig(ctx context.Context) (model.GiftConfig, error) {
	return s.Gift.LoadOrSeed(ctx)
}
