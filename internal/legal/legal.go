// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package legal renders the owner-edited legal texts to sanitized HTML.
package legal

import (
	"bytes"
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/olegiv/vitrine-go/internal/content"
)

// Error is a legal package error.
type Error string

func (e Error) Error() string { return string(e) }

// ErrUnknownDocument is returned for a document name that is not a legal text.
const ErrUnknownDocument Error = "unknown legal document"

// Document is a rendered legal text.
type Document struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Raw   string `json:"raw"`
	HTML  string `json:"html"`
}

var titles = map[string]string{
	content.TextPrivacyPolicy: "Politique de Confidentialité",
	content.TextSalesTerms:    "Conditions Générales de Vente",
	content.TextCopyright:     "Copyright",
}

// Names lists the legal document names.
func Names() []string {
	return []string{content.TextPrivacyPolicy, content.TextSalesTerms, content.TextCopyright}
}

// TextSource resolves a plain-text document by name.
type TextSource interface {
	TextByName(name string) (*content.Text, bool)
}

// Renderer converts legal texts from Markdown to HTML.
type Renderer struct {
	texts  TextSource
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer creates a renderer over texts. Line breaks inside paragraphs
// are kept as <br>.
func NewRenderer(texts TextSource) *Renderer {
	return &Renderer{
		texts: texts,
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// ToHTML renders Markdown source to sanitized HTML.
func (r *Renderer) ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Render loads and renders the named legal document.
func (r *Renderer) Render(ctx context.Context, name string) (*Document, error) {
	title, ok := titles[name]
	if !ok {
		return nil, ErrUnknownDocument
	}
	text, ok := r.texts.TextByName(name)
	if !ok {
		return nil, ErrUnknownDocument
	}

	raw, err := text.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	out, err := r.ToHTML(raw)
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Title: title, Raw: raw, HTML: out}, nil
}
