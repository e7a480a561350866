// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "github.com/olegiv/vitrine-go/internal/model"

// Defaults shown until the owner edits them.

func seedServices() []model.Service {
	return []model.Service{
		{ID: "design", Title: "Graphisme Professionnel", Icon: "🎨",
			Description: "Logos, charte graphique, flyers et identité visuelle percutante pour votre marque."},
		{ID: "video", Title: "Montage Vidéo", Icon: "🎬",
			Description: "Montage dynamique pour YouTube, TikTok, Reels ou publicités professionnelles."},
		{ID: "ads", Title: "Publicités (Ads)", Icon: "🚀",
			Description: "Campagnes Facebook, Instagram et Google pour booster vos ventes."},
		{ID: "content", Title: "Création de Contenu", Icon: "📱",
			Description: "Stratégie et création de contenus engageants pour vos réseaux sociaux."},
		{ID: "training", Title: "Formateur Digital", Icon: "👨‍🏫",
			Description: "Formations pratiques en graphisme, montage et marketing pour débutants et pros."},
		{ID: "ecommerce", Title: "E-commerce & Digital", Icon: "🛍️",
			Description: "Vente de produits digitaux et accompagnement dans le commerce en ligne."},
	}
}

func seedPortfolio() []model.Project {
	return []model.Project{
		{
			ID:          "1",
			Title:       "Identité Visuelle - Tech Togo",
			Category:    "Graphisme",
			MediaURL:    "https://images.unsplash.com/photo-1626785774573-4b799315345d?auto=format&fit=crop&q=80&w=800",
			MediaType:   model.MediaImage,
			Description: "Création d'un logo moderne pour une startup technologique.",
		},
		{
			ID:           "2",
			Title:        "Showreel Montage 2024",
			Category:     "Montage Vidéo",
			MediaURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			MediaType:    model.MediaYouTube,
			ThumbnailURL: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			Description:  "Compilation de mes meilleurs montages vidéo réalisés cette année.",
		},
		{
			ID:          "3",
			Title:       "Publicité Animée - Juice Bar",
			Category:    "Montage Vidéo",
			MediaURL:    "https://assets.mixkit.co/videos/preview/mixkit-girl-in-neon-light-dancing-99648-large.mp4",
			MediaType:   model.MediaVideo,
			Description: "Montage dynamique avec effets spéciaux pour une marque de boisson.",
		},
	}
}

func seedShopItems() []model.ShopItem {
	return []model.ShopItem{{
		ID:             "b1",
		Title:          "Pack de 100+ Templates Canva Pro",
		Price:          "15.000 FCFA",
		PromotionPrice: "7.500 FCFA",
		Description:    "Boostez votre productivité avec nos templates premium prêts à l'emploi pour vos réseaux sociaux au Togo. Logos, flyers, et carrousels inclus.",
		ImageURL:       "https://images.unsplash.com/photo-1611162616305-c69b3fa7fbe0?auto=format&fit=crop&q=80&w=800",
		Category:       model.CategoryTool,
		SecretCode:     "CANVA228",
		DownloadLink:   "https://drive.google.com",
	}}
}

func seedFormations() []model.Formation {
	return []model.Formation{{
		ID:           "f1",
		Title:        "Devenir Graphiste Pro avec Canva & Mobile",
		Tag:          "Le Best-Seller",
		Description:  "La formation la plus complète au Togo pour maîtriser le design sur smartphone. Théorie, pratique et business.",
		Features:     []string{"+20 modules vidéos", "Coaching groupé WhatsApp", "Certificat de fin de formation"},
		Price:        "15.000 FCFA",
		OldPrice:     "25.000 FCFA",
		Image:        "https://images.unsplash.com/photo-1626785774573-4b799315345d?auto=format&fit=crop&q=80&w=800",
		SecretCode:   "CANVA228",
		DownloadLink: "https://drive.google.com",
	}}
}

func seedTestimonials() []model.Testimonial {
	return []model.Testimonial{
		{ID: "t1", Name: "Koffi Mensah", Role: "CEO, Innovate Lome",
			Content: "Basile a transformé notre image de marque. Son professionnalisme et sa créativité sont exceptionnels.",
			Avatar:  "https://i.pravatar.cc/150?u=koffi"},
		{ID: "t2", Name: "Abla Sika", Role: "Influenceuse Mode",
			Content: "Mes vidéos n'ont jamais eu autant d'impact ! Le montage de Basile est dynamique et moderne.",
			Avatar:  "https://i.pravatar.cc/150?u=abla"},
	}
}

func seedProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Title: "Pack 50+ Templates Canva", Price: "9.900 FCFA", Link: "#",
			ImageURL: "https://images.unsplash.com/photo-1611162616305-c69b3fa7fbe0?auto=format&fit=crop&q=80&w=400"},
		{ID: "p2", Title: "E-book : Réussir sur TikTok", Price: "15.000 FCFA", Link: "#",
			ImageURL: "https://images.unsplash.com/photo-1512486130939-2c4f79935e4f?auto=format&fit=crop&q=80&w=400"},
		{ID: "p3", Title: "Formation Montage CapCut", Price: "25.000 FCFA", Link: "#",
			ImageURL: "https://images.unsplash.com/photo-1536240478700-b869070f9279?auto=format&fit=crop&q=80&w=400"},
	}
}

func seedAbout() model.AboutData {
	return model.AboutData{
		Image:        "https://picsum.photos/seed/about/600/700",
		YearsExp:     "05+",
		Title:        "Je m'appelle Basile Kadjolo, votre partenaire pour l'excellence digitale au Togo.",
		Description1: "Basé à Lomé, je suis un passionné du monde numérique. Mon parcours m'a permis de maîtriser les outils les plus pointus du marché pour offrir des solutions créatives et rentables à mes clients.",
		Description2: "Qu'il s'agisse de créer votre premier logo, de monter une vidéo virale pour vos réseaux ou de former votre équipe aux outils du marketing digital, je mets mon expertise à votre service pour des résultats tangibles.",
		Vision:       "Démocratiser le digital au Togo et en Afrique par la qualité.",
		Values:       "Qualité, Réactivité et Innovation constante.",
		Skills: []model.Skill{
			{Name: "Graphisme (Canva/Adobe)", Level: 95},
			{Name: "Montage Vidéo (CapCut/Premiere)", Level: 90},
			{Name: "Publicité Facebook & Google", Level: 85},
			{Name: "Stratégie Social Media", Level: 80},
		},
	}
}

func seedGift() model.GiftConfig {
	return model.GiftConfig{
		Enabled:      true,
		Title:        "E-book Offert : 10 secrets du digital au Togo",
		Code:         "KDO228",
		DownloadLink: "https://google.com",
	}
}

func seedSocialLinks() []model.SocialLink {
	return []model.SocialLink{}
}

// Default texts.
const (
	DefaultCopyright    = "Basile Kadjolo. Lomé, Togo. Tous droits réservés."
	DefaultProfileImage = "https://picsum.photos/seed/basile/800/800"
)

// DefaultPrivacyPolicy is the privacy policy shown until edited.
const DefaultPrivacyPolicy = `01. Collecte des données
Dans le cadre de l'utilisation de mon site portfolio et de ma boutique digitale, je collecte les informations que vous nous fournissez volontairement via le formulaire de commande ou l'assistant IA : Identité (Nom, Prénom), Contact (WhatsApp), Transactions.

02. Utilisation des données
Vos données sont exclusivement utilisées pour traiter vos commandes, vous contacter pour le SAV et personnaliser votre expérience IA. Je ne vends jamais vos données à des tiers.

03. Conservation et Sécurité
Les données transmises via WhatsApp sont chiffrées. Les informations stockées localement sont protégées par les standards de sécurité web.

04. Vos Droits
Vous disposez d'un droit d'accès, de rectification et de suppression de vos données. Contactez-moi directement via WhatsApp pour toute demande.`

// DefaultSalesTerms are the sales terms shown until edited.
const DefaultSalesTerms = `01. Objet
Les présentes conditions visent à définir les modalités de vente entre Basile Kadjolo et ses clients pour l'achat de produits digitaux (e-books, templates, formations).

02. Paiement
Le paiement s'effectue via les moyens proposés lors de la commande : T-Money, Flooz pour le Togo, ou virement pour l'international. La commande est validée après réception effective du paiement.

03. Livraison Digitale
S'agissant de produits numériques, la livraison s'effectue par lien de téléchargement ou accès membre envoyé par WhatsApp ou email immédiatement après confirmation du paiement. Aucun frais de port n'est applicable.

04. Remboursement
Conformément à la réglementation sur les contenus numériques, aucun remboursement n'est possible une fois que le produit a été livré ou que la formation a été consultée.`
