// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"testing"

	"github.com/olegiv/vitrine-go/internal/model"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=short", ""},
		{"https://vimeo.com/123456", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := YouTubeID(tt.url); got != tt.want {
			t.Errorf("YouTubeID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	got := YouTubeThumbnail("https://youtu.be/dQw4w9WgXcQ")
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
	if got != want {
		t.Errorf("YouTubeThumbnail = %q, want %q", got, want)
	}
	if YouTubeThumbnail("https://example.com") != "" {
		t.Error("expected empty thumbnail for non-YouTube URL")
	}
}

func TestPrepareProject_DerivesThumbnail(t *testing.T) {
	p, err := prepareProject(model.Project{
		Title:     "Clip",
		MediaType: model.MediaYouTube,
		MediaURL:  "https://youtu.be/dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatalf("prepareProject: %v", err)
	}
	if p.ThumbnailURL != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("ThumbnailURL = %q", p.ThumbnailURL)
	}
}

func TestFilters(t *testing.T) {
	projects := seedPortfolio()
	if got := FilterPortfolio(projects, "All"); len(got) != 3 {
		t.Errorf("FilterPortfolio(All) = %d projects", len(got))
	}
	if got := FilterPortfolio(projects, "Montage Vidéo"); len(got) != 2 {
		t.Errorf("FilterPortfolio(Montage Vidéo) = %d projects", len(got))
	}

	items := []model.ShopItem{
		{ID: "a", Category: model.CategoryEbook},
		{ID: "b", Category: model.CategoryTool},
		{ID: "c", Category: model.CategoryEbook},
	}
	if got := FilterShop(items, model.CategoryAll); len(got) != 3 {
		t.Errorf("FilterShop(Tout) = %d items", len(got))
	}
	if got := FilterShop(items, model.CategoryEbook); len(got) != 2 {
		t.Errorf("FilterShop(E-book) = %d items", len(got))
	}
	if got := FilterShop(items, model.CategoryService); len(got) != 0 {
		t.Errorf("FilterShop(Service) = %d items", len(got))
	}
}
