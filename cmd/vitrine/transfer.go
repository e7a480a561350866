// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/olegiv/vitrine-go/internal/config"
	"github.com/olegiv/vitrine-go/internal/logging"
	"github.com/olegiv/vitrine-go/internal/transfer"
)

func cliLogger(cfg *config.Config) *slog.Logger {
	// Keep stdout clean for the export itself.
	return logging.New(os.Stderr, cfg.LogLevel, nil)
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every site document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger := cliLogger(cfg)

			s, err := openSite(cmd.Context(), cfg, nil, false, logger)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			blob, err := s.app.Export(cmd.Context())
			if err != nil {
				return fmt.Errorf("exporting: %w", err)
			}

			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), blob)
				return err
			}
			if err := os.WriteFile(out, []byte(blob+"\n"), 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			logger.Info("export written", "path", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the export to this file instead of stdout")
	return cmd
}

func newImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Overwrite site documents from an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger := cliLogger(cfg)

			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			s, err := openSite(cmd.Context(), cfg, nil, false, logger)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			res, err := s.app.Importer.Import(cmd.Context(), blob, transfer.ImportOptions{
				Prefix: s.app.Prefix(),
				DryRun: dryRun,
			})
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without writing")
	return cmd
}
