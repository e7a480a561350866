// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "github.com/olegiv/vitrine-go/internal/model"

// PortfolioCategories are the portfolio filter values. "All" matches every project.
var PortfolioCategories = []string{"All", "Graphisme", "Montage Vidéo", "Publicité"}

// FilterPortfolio returns the projects of category. "All" and "" keep everything.
func FilterPortfolio(projects []model.Project, category string) []model.Project {
	if category == "" || category == "All" {
		return projects
	}
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterShop returns the shop items of category. "Tout" and "" keep everything.
func FilterShop(items []model.ShopItem, category string) []model.ShopItem {
	if category == "" || category == model.CategoryAll {
		return items
	}
	out := make([]model.ShopItem, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}
