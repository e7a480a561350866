// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/olegiv/vitrine-go/internal/metrics"
	"github.com/olegiv/vitrine-go/internal/util"
)

const (
	backupFilePrefix = "vitrine-backup-"
	backupFileSuffix = ".json"
	backupTimeLayout = "20060102T150405Z"
)

// ErrInvalidBackupName is returned by Read for names that are not backup
// files written by Run.
var ErrInvalidBackupName = errors.New("invalid backup name")

// BackupName returns the file name of a backup taken at t.
func BackupName(t time.Time) string {
	return backupFilePrefix + t.UTC().Format(backupTimeLayout) + backupFileSuffix
}

func isBackupName(name string) bool {
	return strings.HasPrefix(name, backupFilePrefix) && strings.HasSuffix(name, backupFileSuffix)
}

// BackupConfig configures periodic backups.
type BackupConfig struct {
	Dir    string
	Prefix string
	// Retain is the number of newest backups kept; zero keeps all.
	Retain int
}

// Backup writes exports into a directory and prunes old files.
type Backup struct {
	exporter *Exporter
	cfg      BackupConfig
	metrics  metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewBackup creates a backup job over exporter.
func NewBackup(exporter *Exporter, cfg BackupConfig, rec metrics.Recorder, logger *slog.Logger) *Backup {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backup{
		exporter: exporter,
		cfg:      cfg,
		metrics:  metrics.OrNop(rec),
		logger:   logger,
		now:      time.Now,
	}
}

// Run writes one backup file and applies retention. It returns the path
// of the written file.
func (b *Backup) Run(ctx context.Context) (string, error) {
	path, err := b.write(ctx)
	if err != nil {
		b.metrics.RecordBackup(metrics.OutcomeError)
		return "", err
	}
	b.metrics.RecordBackup(metrics.OutcomeSuccess)

	removed, err := b.prune()
	if err != nil {
		b.logger.Warn("backup retention failed", "dir", b.cfg.Dir, "error", err)
	}
	b.logger.Info("backup written", "path", path, "pruned", removed)
	return path, nil
}

// RunJob runs the backup discarding the path, for use as a scheduled job.
func (b *Backup) RunJob(ctx context.Context) error {
	_, err := b.Run(ctx)
	return err
}

func (b *Backup) write(ctx context.Context) (string, error) {
	blob, err := b.exporter.ExportAll(ctx, b.cfg.Prefix)
	if err != nil {
		return "", fmt.Errorf("exporting documents: %w", err)
	}
	if err := os.MkdirAll(b.cfg.Dir, 0o750); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	path, err := util.SafeJoin(b.cfg.Dir, BackupName(b.now()))
	if err != nil {
		return "", err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(blob), 0o640); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("finalizing backup: %w", err)
	}
	return path, nil
}

// List returns backup file names in the directory, newest first.
func (b *Backup) List() ([]string, error) {
	entries, err := os.ReadDir(b.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !isBackupName(name) {
			continue
		}
		names = append(names, name)
	}
	// The timestamp layout sorts lexically.
	slices.Sort(names)
	slices.Reverse(names)
	return names, nil
}

// Read returns the content of the named backup file. A missing file
// yields an error matching fs.ErrNotExist.
func (b *Backup) Read(name string) ([]byte, error) {
	if !isBackupName(name) {
		return nil, ErrInvalidBackupName
	}
	path, err := util.SafeJoin(b.cfg.Dir, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackupName, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup %s: %w", name, err)
	}
	return data, nil
}

func (b *Backup) prune() (int, error) {
	if b.cfg.Retain <= 0 {
		return 0, nil
	}
	names, err := b.List()
	if err != nil {
		return 0, err
	}
	if len(names) <= b.cfg.Retain {
		return 0, nil
	}

	removed := 0
	for _, name := range names[b.cfg.Retain:] {
		if err := os.Remove(filepath.Join(b.cfg.Dir, name)); err != nil {
			return removed, fmt.Errorf("removing %s: %w", name, err)
		}
		removed++
	}
	return removed, nil
}
