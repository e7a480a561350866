// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/vitrine-go/internal/app"
	"github.com/olegiv/vitrine-go/internal/legal"
	"github.com/olegiv/vitrine-go/internal/model"
)

// PublicHandler serves the visitor-facing endpoints.
type PublicHandler struct {
	app    *app.App
	legal  *legal.Renderer
	logger *slog.Logger
}

// NewPublicHandler creates a public handler.
func NewPublicHandler(a *app.App, logger *slog.Logger) *PublicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublicHandler{app: a, legal: legal.NewRenderer(a.Content), logger: logger}
}

// Site handles GET /api/site. The portfolio and shop query parameters
// filter projects and shop items by category.
func (h *PublicHandler) Site(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	site, err := h.app.Site(r.Context(), app.SiteFilter{
		PortfolioCategory: q.Get("portfolio"),
		ShopCategory:      q.Get("shop"),
	})
	if err != nil {
		writeError(w, h.logger, err, "failed to build site")
		return
	}
	writeJSONSuccess(w, map[string]any{"site": site})
}

// Legal handles GET /api/legal/{doc}.
func (h *PublicHandler) Legal(w http.ResponseWriter, r *http.Request) {
	doc, err := h.legal.Render(r.Context(), chi.URLParam(r, "doc"))
	if err != nil {
		writeError(w, h.logger, err, "failed to render legal text")
		return
	}
	writeJSONSuccess(w, map[string]any{"document": doc})
}

type checkoutRequest struct {
	ItemID string `json:"itemId"`
	model.BuyerInfo
}

// Checkout handles POST /api/checkout.
func (h *PublicHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	link, err := h.app.PlaceOrder(r.Context(), req.ItemID, req.BuyerInfo)
	if err != nil {
		writeError(w, h.logger, err, "failed to place order", "item_id", req.ItemID)
		return
	}
	writeJSONSuccess(w, map[string]any{"message": link.Message, "url": link.URL})
}

// ShareProduct handles GET /api/products/{id}/share?url=<page>. The page
// URL falls back to the Referer header.
func (h *PublicHandler) ShareProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		pageURL = r.Referer()
	}
	links, err := h.app.ShareProduct(r.Context(), id, pageURL)
	if err != nil {
		writeError(w, h.logger, err, "failed to build share links", "product_id", id)
		return
	}
	writeJSONSuccess(w, map[string]any{"links": links})
}

// OrderProduct handles POST /api/products/{id}/order.
func (h *PublicHandler) OrderProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	link, err := h.app.OrderProduct(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "failed to order product", "product_id", id)
		return
	}
	writeJSONSuccess(w, map[string]any{"message": link.Message, "url": link.URL})
}

type codeRequest struct {
	Code string `json:"code"`
}

// Unlock handles POST /api/unlock/{id}.
func (h *PublicHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	res, err := h.app.Unlock(r.Context(), id, req.Code)
	if err != nil {
		writeError(w, h.logger, err, "failed to unlock item", "item_id", id)
		return
	}
	writeJSONSuccess(w, map[string]any{"unlocked": res.Unlocked, "downloadLink": res.DownloadLink})
}

type giftRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RequestGift handles POST /api/gift/request.
func (h *PublicHandler) RequestGift(w http.ResponseWriter, r *http.Request) {
	var req giftRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	link, err := h.app.RequestGift(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		writeError(w, h.logger, err, "failed to request gift")
		return
	}
	writeJSONSuccess(w, map[string]any{"message": link.Message, "url": link.URL})
}

// UnlockGift handles POST /api/gift/unlock.
func (h *PublicHandler) UnlockGift(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.app.UnlockGift(r.Context(), req.Code)
	if err != nil {
		writeError(w, h.logger, err, "failed to unlock gift")
		return
	}
	writeJSONSuccess(w, map[string]any{"unlocked": res.Unlocked, "downloadLink": res.DownloadLink})
}

// SubmitReview handles POST /api/testimonials.
func (h *PublicHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req app.Review
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.app.SubmitReview(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err, "failed to submit review")
		return
	}
	writeJSONStatus(w, http.StatusCreated, map[string]any{
		"testimonial": res.Testimonial,
		"message":     res.Notice.Message,
		"url":         res.Notice.URL,
	})
}

type chatRequest struct {
	Prompt  string              `json:"prompt"`
	History []model.ChatMessage `json:"history"`
}

// Chat handles POST /api/chat. Provider failures are answered with a
// fallback reply, never an HTTP error.
func (h *PublicHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reply, err := h.app.Ask(r.Context(), req.Prompt, req.History)
	if err != nil {
		writeError(w, h.logger, err, "failed to relay chat")
		return
	}
	writeJSONSuccess(w, map[string]any{"reply": reply})
}
