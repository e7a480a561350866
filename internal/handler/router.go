// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/vitrine-go/internal/app"
	"github.com/olegiv/vitrine-go/internal/imaging"
	"github.com/olegiv/vitrine-go/internal/logging"
	"github.com/olegiv/vitrine-go/internal/metrics"
	"github.com/olegiv/vitrine-go/internal/middleware"
	"github.com/olegiv/vitrine-go/internal/scheduler"
	"github.com/olegiv/vitrine-go/internal/transfer"
)

// RouterConfig holds everything the HTTP API needs.
type RouterConfig struct {
	App      *app.App
	Sessions *scs.SessionManager

	// Backend names the document store backend reported by /health.
	Backend string

	// SessionSecret keys the CSRF middleware.
	SessionSecret string
	IsDevelopment bool
	Addr          string

	RateLimitRPS   float64
	RateLimitBurst int

	Processor *imaging.Processor
	Backup    *transfer.Backup
	Scheduler *scheduler.Scheduler
	Events    *logging.EventLog

	Metrics        metrics.Recorder
	MetricsHandler http.Handler

	// RequestTimeout bounds each request. Zero means 60s.
	RequestTimeout time.Duration

	// RequestLogging enables chi's request logger.
	RequestLogging bool

	Logger *slog.Logger
}

// NewRouter builds the chi router serving the whole API.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if cfg.Processor == nil {
		cfg.Processor = imaging.NewProcessor(0, 0, 0)
	}
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 10
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 30
	}

	a := cfg.App
	health := NewHealthHandler(a.Docs, cfg.Backend, a.Chat)
	public := NewPublicHandler(a, logger)
	authH := NewAuthHandler(a.Identities, cfg.Sessions,
		middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig()), logger)
	team := NewTeamHandler(a.Identities, logger)
	contentH := NewContentHandler(a.Content, logger)
	media := NewMediaHandler(cfg.Processor, a.Content, logger)
	var jobs JobTrigger
	if cfg.Scheduler != nil {
		jobs = cfg.Scheduler
	}
	syncH := NewSyncHandler(a, cfg.Backup, jobs, logger)
	events := NewEventsHandler(cfg.Events, cfg.Scheduler)

	csrf := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment, cfg.Addr))
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if cfg.RequestLogging {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(chimw.StripSlashes)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment)))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", health.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware())

		r.Get("/site", public.Site)
		r.Get("/legal/{doc}", public.Legal)
		r.Post("/checkout", public.Checkout)
		r.Post("/products/{id}/order", public.OrderProduct)
		r.Get("/products/{id}/share", public.ShareProduct)
		r.Post("/unlock/{id}", public.Unlock)
		r.Post("/gift/request", public.RequestGift)
		r.Post("/gift/unlock", public.UnlockGift)
		r.Post("/testimonials", public.SubmitReview)
		r.Post("/chat", public.Chat)

		r.Route("/admin", func(r chi.Router) {
			r.Use(cfg.Sessions.LoadAndSave)
			r.Use(csrf)

			r.Post("/login", authH.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(cfg.Sessions, a.Identities))

				r.Post("/logout", authH.Logout)
				r.Get("/me", authH.Me)
				r.Put("/pin", authH.ChangePIN)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Get("/team", team.List)
					r.Post("/team", team.Create)
					r.Delete("/team/{id}", team.Delete)
					r.Post("/team/{id}/superadmin", team.ToggleSuperAdmin)
				})

				for name, h := range contentH.Collections() {
					r.Mount("/"+name, h)
				}
				r.Get("/doc/{name}", contentH.GetDoc)
				r.Put("/doc/{name}", contentH.PutDoc)
				r.Delete("/doc/{name}", contentH.ResetDoc)

				r.Post("/media", media.Upload)

				r.Get("/export", syncH.Export)
				r.Post("/import", syncH.Import)
				r.Get("/backups", syncH.ListBackups)
				r.Post("/backups", syncH.RunBackup)
				r.Get("/backups/{name}", syncH.DownloadBackup)

				r.Get("/events", events.Events)
				r.Get("/jobs", events.Jobs)
			})
		})
	})

	return r
}
