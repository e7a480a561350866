// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/olegiv/vitrine-go/internal/config"
	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/handler"
	"github.com/olegiv/vitrine-go/internal/imaging"
	"github.com/olegiv/vitrine-go/internal/logging"
	"github.com/olegiv/vitrine-go/internal/metrics"
	"github.com/olegiv/vitrine-go/internal/scheduler"
	"github.com/olegiv/vitrine-go/internal/session"
	"github.com/olegiv/vitrine-go/internal/transfer"
	"github.com/olegiv/vitrine-go/internal/version"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	events := logging.NewEventLog(0)
	logger := logging.New(os.Stdout, cfg.LogLevel, events)
	slog.SetDefault(logger)
	slog.Info("starting vitrine", "version", version.Get().String(), "env", cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewCollector(reg)

	s, err := openSite(ctx, cfg, rec, true, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			slog.Error("closing document store", "error", err)
		}
	}()
	slog.Info("document store ready", "backend", s.info.Backend, "fallback", s.info.IsFallback)

	// Sessions share the SQLite database when there is one.
	var sessionDB *sql.DB
	if sq, ok := s.docs.(*docstore.SQLiteStore); ok {
		sessionDB = sq.DB()
	}
	sm := session.New(sessionDB, cfg.IsDevelopment())

	sched := scheduler.New(logger)
	var backup *transfer.Backup
	if cfg.BackupsEnabled() {
		backup = transfer.NewBackup(s.app.Exporter, transfer.BackupConfig{
			Dir:    cfg.BackupDir,
			Prefix: s.app.Prefix(),
			Retain: cfg.BackupRetain,
		}, rec, logger)
		if err := sched.Add(handler.BackupJobName, cfg.BackupSchedule, backup.RunJob); err != nil {
			return fmt.Errorf("scheduling backups: %w", err)
		}
		slog.Info("scheduled backups enabled", "schedule", cfg.BackupSchedule, "dir", cfg.BackupDir)
	}
	sched.Start()
	defer sched.Stop()

	router := handler.NewRouter(handler.RouterConfig{
		App:            s.app,
		Sessions:       sm,
		Backend:        s.info.Backend,
		SessionSecret:  cfg.SessionSecret,
		IsDevelopment:  cfg.IsDevelopment(),
		Addr:           cfg.ServerAddr(),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Processor:      imaging.NewProcessor(cfg.UploadMaxDimension, 0, cfg.UploadMaxBytes),
		Backup:         backup,
		Scheduler:      sched,
		Events:         events,
		Metrics:        rec,
		MetricsHandler: metrics.Handler(reg),
		RequestTimeout: cfg.ChatTimeout + 30*time.Second,
		RequestLogging: cfg.IsDevelopment(),
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.ChatTimeout + 60*time.Second, // Chat replies wait on the provider
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-quit:
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
