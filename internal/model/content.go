// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Record is an editable entry of a content collection.
// WithRecordID returns a copy of the record carrying id.
type Record[T any] interface {
	RecordID() string
	WithRecordID(id string) T
}

// Purchasable is a record that can be ordered and unlocked with a code.
type Purchasable interface {
	RecordID() string
	UnlockCode() string
	ContentLink() string
	OrderSummary() OrderItem
}

// Service is an offered digital service.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (s Service) RecordID() string { return s.ID }

func (s Service) WithRecordID(id string) Service {
	s.ID = id
	return s
}

// Media types of a portfolio project.
const (
	MediaImage   = "image"
	MediaVideo   = "video"
	MediaYouTube = "youtube"
)

// Project is a portfolio entry.
type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	MediaURL     string `json:"mediaUrl"`
	MediaType    string `json:"mediaType"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Description  string `json:"description"`
	ExternalLink string `json:"externalLink,omitempty"`
}

func (p Project) RecordID() string { return p.ID }

func (p Project) WithRecordID(id string) Project {
	p.ID = id
	return p
}

// Shop item categories. CategoryAll is a filter value, not a stored category.
const (
	CategoryAll       = "Tout"
	CategoryFormation = "Formation"
	CategoryEbook     = "E-book"
	CategoryTool      = "Outil"
	CategoryService   = "Service"
)

// ShopCategories lists the categories a shop item may carry.
var ShopCategories = []string{CategoryFormation, CategoryEbook, CategoryTool, CategoryService}

// ShopItem is a paid digital product sold through the boutique.
type ShopItem struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Price          string `json:"price"`
	PromotionPrice string `json:"promotionPrice,omitempty"`
	Description    string `json:"description"`
	ImageURL       string `json:"imageUrl"`
	Category       string `json:"category"`
	SecretCode     string `json:"secretCode,omitempty"`
	DownloadLink   string `json:"downloadLink,omitempty"`
}

func (s ShopItem) RecordID() string { return s.ID }

func (s ShopItem) WithRecordID(id string) ShopItem {
	s.ID = id
	return s
}

func (s ShopItem) UnlockCode() string  { return s.SecretCode }
func (s ShopItem) ContentLink() string { return s.DownloadLink }

// DisplayPrice is the promotion price when set, else the normal price.
func (s ShopItem) DisplayPrice() string {
	if s.PromotionPrice != "" {
		return s.PromotionPrice
	}
	return s.Price
}

func (s ShopItem) OrderSummary() OrderItem {
	return OrderItem{ID: s.ID, Title: s.Title, Price: s.DisplayPrice(), Category: s.Category}
}

// Formation is a paid training course.
type Formation struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Tag          string   `json:"tag"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Price        string   `json:"price"`
	OldPrice     string   `json:"oldPrice"`
	Image        string   `json:"image"`
	SecretCode   string   `json:"secretCode"`
	DownloadLink string   `json:"downloadLink"`
}

func (f Formation) RecordID() string { return f.ID }

func (f Formation) WithRecordID(id string) Formation {
	f.ID = id
	return f
}

func (f Formation) UnlockCode() string  { return f.SecretCode }
func (f Formation) ContentLink() string { return f.DownloadLink }

func (f Formation) OrderSummary() OrderItem {
	return OrderItem{ID: f.ID, Title: f.Title, Price: f.Price, Category: CategoryFormation}
}

// Testimonial is a customer review shown on the site.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
}

func (t Testimonial) RecordID() string { return t.ID }

func (t Testimonial) WithRecordID(id string) Testimonial {
	t.ID = id
	return t
}

// Product is an affiliate product of the digital shop.
type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
}

func (p Product) RecordID() string { return p.ID }

func (p Product) WithRecordID(id string) Product {
	p.ID = id
	return p
}

// Skill is a named proficiency shown on the about section.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// AboutData is the about section singleton.
type AboutData struct {
	Image        string  `json:"image"`
	YearsExp     string  `json:"yearsExp"`
	Title        string  `json:"title"`
	Description1 string  `json:"description1"`
	Description2 string  `json:"description2"`
	Vision       string  `json:"vision"`
	Values       string  `json:"values"`
	Skills       []Skill `json:"skills"`
}

// SocialLink is a profile link on a social platform.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// GiftConfig configures the lead-magnet gift.
type GiftConfig struct {
	Enabled      bool   `json:"enabled"`
	Title        string `json:"title"`
	Code         string `json:"code"`
	DownloadLink string `json:"downloadLink"`
}
