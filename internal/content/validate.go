// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"net/url"
	"slices"
	"strings"

	"github.com/olegiv/vitrine-go/internal/model"
)

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "is required")
	}
	return nil
}

// NormalizeCode trims a secret code and upper-cases it.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func prepareService(s model.Service) (model.Service, error) {
	s.Title = strings.TrimSpace(s.Title)
	if err := requireField("title", s.Title); err != nil {
		return s, err
	}
	if s.Icon == "" {
		s.Icon = "🚀"
	}
	return s, nil
}

func prepareProject(p model.Project) (model.Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := requireField("title", p.Title); err != nil {
		return p, err
	}
	if p.MediaType == "" {
		p.MediaType = model.MediaImage
	}
	switch p.MediaType {
	case model.MediaImage, model.MediaVideo:
	case model.MediaYouTube:
		if YouTubeID(p.MediaURL) == "" {
			return p, invalid("mediaUrl", "is not a YouTube video URL")
		}
		if p.ThumbnailURL == "" {
			p.ThumbnailURL = YouTubeThumbnail(p.MediaURL)
		}
	default:
		return p, invalid("mediaType", "must be image, video or youtube")
	}
	if p.Category == "" {
		p.Category = PortfolioCategories[1]
	}
	return p, nil
}

func prepareShopItem(it model.ShopItem) (model.ShopItem, error) {
	it.Title = strings.TrimSpace(it.Title)
	if err := requireField("title", it.Title); err != nil {
		return it, err
	}
	if err := requireField("price", it.Price); err != nil {
		return it, err
	}
	if it.Category == "" {
		it.Category = model.CategoryFormation
	}
	if !slices.Contains(model.ShopCategories, it.Category) {
		return it, invalid("category", "is not a shop category")
	}
	it.SecretCode = NormalizeCode(it.SecretCode)
	return it, nil
}

func prepareFormation(f model.Formation) (model.Formation, error) {
	f.Title = strings.TrimSpace(f.Title)
	if err := requireField("title", f.Title); err != nil {
		return f, err
	}
	if f.Tag == "" {
		f.Tag = "NOUVEAU"
	}
	features := make([]string, 0, len(f.Features))
	for _, feat := range f.Features {
		if feat = strings.TrimSpace(feat); feat != "" {
			features = append(features, feat)
		}
	}
	f.Features = features
	f.SecretCode = NormalizeCode(f.SecretCode)
	return f, nil
}

func prepareTestimonial(t model.Testimonial) (model.Testimonial, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Content = strings.TrimSpace(t.Content)
	if err := requireField("name", t.Name); err != nil {
		return t, err
	}
	if err := requireField("content", t.Content); err != nil {
		return t, err
	}
	if strings.TrimSpace(t.Role) == "" {
		t.Role = "Client"
	}
	if t.Avatar == "" {
		t.Avatar = "https://i.pravatar.cc/150?u=" + url.QueryEscape(t.Name)
	}
	return t, nil
}

func prepareProduct(p model.Product) (model.Product, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := requireField("title", p.Title); err != nil {
		return p, err
	}
	if p.Link == "" {
		p.Link = "#"
	}
	return p, nil
}

func prepareAbout(a model.AboutData) (model.AboutData, error) {
	for i, sk := range a.Skills {
		if strings.TrimSpace(sk.Name) == "" {
			return a, invalid("skills", "every skill needs a name")
		}
		if sk.Level < 0 || sk.Level > 100 {
			return a, invalid("skills", "level must be between 0 and 100")
		}
		a.Skills[i].Name = strings.TrimSpace(sk.Name)
	}
	if a.Skills == nil {
		a.Skills = []model.Skill{}
	}
	return a, nil
}

func prepareGift(g model.GiftConfig) (model.GiftConfig, error) {
	g.Title = strings.TrimSpace(g.Title)
	g.Code = strings.TrimSpace(g.Code)
	if g.Enabled {
		if err := requireField("title", g.Title); err != nil {
			return g, err
		}
		if err := requireField("code", g.Code); err != nil {
			return g, err
		}
	}
	return g, nil
}

func prepareSocialLinks(links []model.SocialLink) ([]model.SocialLink, error) {
	out := make([]model.SocialLink, 0, len(links))
	for _, l := range links {
		l.Platform = strings.TrimSpace(l.Platform)
		if err := requireField("platform", l.Platform); err != nil {
			return nil, err
		}
		u, err := url.Parse(strings.TrimSpace(l.URL))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, invalid("url", "must be an http(s) URL")
		}
		l.URL = u.String()
		out = append(out, l)
	}
	return out, nil
}
