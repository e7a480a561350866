// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/vitrine-go/internal/content"
	"github.com/olegiv/vitrine-go/internal/model"
)

// Collection route names under /api/admin.
const (
	CollectionServices     = "services"
	CollectionPortfolio    = "portfolio"
	CollectionShopItems    = "shop-items"
	CollectionFormations   = "formations"
	CollectionTestimonials = "testimonials"
	CollectionProducts     = "products"
)

// Document names under /api/admin/doc besides the plain texts.
const (
	DocAbout       = "about"
	DocGift        = "gift"
	DocSocialLinks = "social-links"
)

// ContentHandler serves admin CRUD over every content store.
type ContentHandler struct {
	stores *content.Stores
	docs   map[string]docEndpoint
	logger *slog.Logger
}

// NewContentHandler creates a content handler.
func NewContentHandler(stores *content.Stores, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		stores: stores,
		logger: logger,
		docs: map[string]docEndpoint{
			DocAbout:       jsonDoc[model.AboutData]{stores.About},
			DocGift:        jsonDoc[model.GiftConfig]{stores.Gift},
			DocSocialLinks: jsonDoc[[]model.SocialLink]{stores.SocialLinks},
		},
	}
}

// Collections returns the sub-routers of every collection keyed by name.
func (h *ContentHandler) Collections() map[string]http.Handler {
	return map[string]http.Handler{
		CollectionServices:     collectionRouter(h.stores.Services, h.logger),
		CollectionPortfolio:    collectionRouter(h.stores.Portfolio, h.logger),
		CollectionShopItems:    collectionRouter(h.stores.ShopItems, h.logger),
		CollectionFormations:   collectionRouter(h.stores.Formations, h.logger),
		CollectionTestimonials: collectionRouter(h.stores.Testimonials, h.logger),
		CollectionProducts:     collectionRouter(h.stores.Products, h.logger),
	}
}

// collectionRouter serves GET/POST / and PUT/DELETE /{id} for c.
func collectionRouter[T model.Record[T]](c *content.Collection[T], logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		list, err := c.LoadOrSeed(r.Context())
		if err != nil {
			writeError(w, logger, err, "failed to list records", "key", c.Key())
			return
		}
		writeJSONSuccess(w, map[string]any{"items": list})
	})

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var rec T
		if !decodeJSON(w, r, &rec) {
			return
		}
		created, err := c.Create(r.Context(), rec)
		if err != nil {
			writeError(w, logger, err, "failed to create record", "key", c.Key())
			return
		}
		writeJSONStatus(w, http.StatusCreated, map[string]any{"item": created})
	})

	r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var rec T
		if !decodeJSON(w, r, &rec) {
			return
		}
		updated, err := c.Update(r.Context(), id, rec)
		if err != nil {
			writeError(w, logger, err, "failed to update record", "key", c.Key(), "id", id)
			return
		}
		writeJSONSuccess(w, map[string]any{"item": updated})
	})

	r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := c.Delete(r.Context(), id); err != nil {
			writeError(w, logger, err, "failed to delete record", "key", c.Key(), "id", id)
			return
		}
		writeJSONSuccess(w, nil)
	})

	return r
}

// docEndpoint reads and replaces one singleton document.
type docEndpoint interface {
	load(ctx context.Context) (any, error)
	save(ctx context.Context, body io.Reader) (any, error)
}

type jsonDoc[T any] struct {
	doc *content.Document[T]
}

func (d jsonDoc[T]) load(ctx context.Context) (any, error) {
	return d.doc.LoadOrSeed(ctx)
}

func (d jsonDoc[T]) save(ctx context.Context, body io.Reader) (any, error) {
	var v T
	if err := json.NewDecoder(body).Decode(&v); err != nil {
		return nil, &content.ValidationError{Field: "body", Message: "invalid JSON"}
	}
	return d.doc.Save(ctx, v)
}

type textValue struct {
	Value string `json:"value"`
}

type textDoc struct {
	text *content.Text
}

func (d textDoc) load(ctx context.Context) (any, error) {
	s, err := d.text.Load(ctx)
	if err != nil {
		return nil, err
	}
	return textValue{Value: s}, nil
}

func (d textDoc) save(ctx context.Context, body io.Reader) (any, error) {
	var v textValue
	if err := json.NewDecoder(body).Decode(&v); err != nil {
		return nil, &content.ValidationError{Field: "body", Message: "invalid JSON"}
	}
	if err := d.text.Save(ctx, v.Value); err != nil {
		return nil, err
	}
	return v, nil
}

func (h *ContentHandler) doc(name string) (docEndpoint, bool) {
	if d, ok := h.docs[name]; ok {
		return d, true
	}
	if t, ok := h.stores.TextByName(name); ok {
		return textDoc{t}, true
	}
	return nil, false
}

// GetDoc handles GET /api/admin/doc/{name}.
func (h *ContentHandler) GetDoc(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, ok := h.doc(name)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Unknown document")
		return
	}
	v, err := d.load(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to load document", "name", name)
		return
	}
	writeJSONSuccess(w, map[string]any{"document": v})
}

// PutDoc handles PUT /api/admin/doc/{name}.
func (h *ContentHandler) PutDoc(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, ok := h.doc(name)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Unknown document")
		return
	}
	v, err := d.save(r.Context(), http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		writeError(w, h.logger, err, "failed to save document", "name", name)
		return
	}
	writeJSONSuccess(w, map[string]any{"document": v})
}

// ResetDoc handles DELETE /api/admin/doc/{name}. Only plain texts can be
// reset to their default.
func (h *ContentHandler) ResetDoc(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	t, ok := h.stores.TextByName(name)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Unknown text document")
		return
	}
	if err := t.Reset(r.Context()); err != nil {
		writeError(w, h.logger, err, "failed to reset document", "name", name)
		return
	}
	writeJSONSuccess(w, nil)
}
