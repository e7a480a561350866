// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/scheduler"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// PIN verifiers.
const (
	VerifierPlain  = "plain"
	VerifierArgon2 = "argon2"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"VITRINE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"VITRINE_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"VITRINE_ENV" envDefault:"development"`
	LogLevel   string `env:"VITRINE_LOG_LEVEL" envDefault:"info"`

	SessionSecret string `env:"VITRINE_SESSION_SECRET,required"`

	// Document store
	Namespace     string `env:"VITRINE_NAMESPACE" envDefault:"vitrine"`
	StoreBackend  string `env:"VITRINE_STORE_BACKEND" envDefault:"sqlite"`
	DBPath        string `env:"VITRINE_DB_PATH" envDefault:"./data/vitrine.db"`
	RedisURL      string `env:"VITRINE_REDIS_URL"`
	RedisPrefix   string `env:"VITRINE_REDIS_PREFIX" envDefault:"vitrine:"`
	RedisFallback bool   `env:"VITRINE_REDIS_FALLBACK" envDefault:"true"` // Use memory when Redis is unreachable
	PINVerifier   string `env:"VITRINE_PIN_VERIFIER" envDefault:"plain"`

	WhatsAppNumber string `env:"VITRINE_WHATSAPP_NUMBER" envDefault:"22896495419"`

	// Media uploads
	UploadMaxBytes     int64 `env:"VITRINE_UPLOAD_MAX_BYTES" envDefault:"8388608"`
	UploadMaxDimension int   `env:"VITRINE_UPLOAD_MAX_DIMENSION" envDefault:"1200"`

	// Chat assistant
	ChatProvider  string        `env:"VITRINE_CHAT_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey  string        `env:"VITRINE_GEMINI_API_KEY"`
	OpenAIAPIKey  string        `env:"VITRINE_OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"VITRINE_OPENAI_BASE_URL"`
	ChatModel     string        `env:"VITRINE_CHAT_MODEL"`
	ChatTimeout   time.Duration `env:"VITRINE_CHAT_TIMEOUT" envDefault:"30s"`

	// Backups
	BackupSchedule string `env:"VITRINE_BACKUP_SCHEDULE"` // Cron expression; empty disables backups
	BackupDir      string `env:"VITRINE_BACKUP_DIR" envDefault:"./data/backups"`
	BackupRetain   int    `env:"VITRINE_BACKUP_RETAIN" envDefault:"14"`

	// Rate limiting
	RateLimitRPS   float64 `env:"VITRINE_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"VITRINE_RATE_LIMIT_BURST" envDefault:"30"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// BackupsEnabled returns true if a backup schedule is configured.
func (c Config) BackupsEnabled() bool {
	return c.BackupSchedule != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("VITRINE_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}
	return cfg, nil
}

// Validate checks field values that env tags cannot express.
func (c *Config) Validate() error {
	if len(c.SessionSecret) < MinSessionSecretLength {
		return fmt.Errorf("VITRINE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(c.SessionSecret))
	}
	if slices.Contains(knownWeakSecrets, c.SessionSecret) {
		return fmt.Errorf("VITRINE_SESSION_SECRET is a known default value and must not be used; " +
			"generate a secure secret with: openssl rand -base64 32")
	}

	switch c.StoreBackend {
	case docstore.BackendMemory, docstore.BackendSQLite:
	case docstore.BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("VITRINE_REDIS_URL is required when VITRINE_STORE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("VITRINE_STORE_BACKEND must be one of memory, sqlite, redis; got %q", c.StoreBackend)
	}

	if c.PINVerifier != VerifierPlain && c.PINVerifier != VerifierArgon2 {
		return fmt.Errorf("VITRINE_PIN_VERIFIER must be plain or argon2; got %q", c.PINVerifier)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("VITRINE_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}

	switch c.ChatProvider {
	case "none", "gemini", "openai":
	default:
		return fmt.Errorf("VITRINE_CHAT_PROVIDER must be one of none, gemini, openai; got %q", c.ChatProvider)
	}
	if c.ChatTimeout <= 0 {
		return fmt.Errorf("VITRINE_CHAT_TIMEOUT must be positive")
	}

	if c.BackupsEnabled() {
		if err := scheduler.ValidateSchedule(c.BackupSchedule); err != nil {
			return fmt.Errorf("VITRINE_BACKUP_SCHEDULE: %w", err)
		}
	}
	if c.BackupRetain < 0 {
		return fmt.Errorf("VITRINE_BACKUP_RETAIN must not be negative")
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("VITRINE_RATE_LIMIT_RPS and VITRINE_RATE_LIMIT_BURST must be positive")
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("VITRINE_UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
