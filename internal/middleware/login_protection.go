// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"sync"
	"time"
)

// LoginProtection locks out client IPs after repeated failed PIN logins.
// It only guards the HTTP login route; the identity store is not throttled.
type LoginProtection struct {
	ipLimiters *limiterCache[string]

	mu       sync.Mutex
	attempts map[string]*loginAttempt

	maxFailedAttempts int
	lockoutDuration   time.Duration
	attemptWindow     time.Duration
	now               func() time.Time
}

type loginAttempt struct {
	count       int
	firstFailed time.Time
	lockedUntil time.Time
	lockouts    int
}

// LoginProtectionConfig holds configuration for login protection.
type LoginProtectionConfig struct {
	// IPRateLimit is login requests per second per IP (default 0.5).
	IPRateLimit float64
	// IPBurst is the maximum burst of login requests (default 5).
	IPBurst int
	// MaxFailedAttempts before lockout (default 5).
	MaxFailedAttempts int
	// LockoutDuration is the base lockout, doubled on each lockout (default 15m).
	LockoutDuration time.Duration
	// AttemptWindow is the window for counting failures (default 15m).
	AttemptWindow time.Duration
}

// DefaultLoginProtectionConfig returns the defaults.
func DefaultLoginProtectionConfig() LoginProtectionConfig {
	return LoginProtectionConfig{
		IPRateLimit:       0.5,
		IPBurst:           5,
		MaxFailedAttempts: 5,
		LockoutDuration:   15 * time.Minute,
		AttemptWindow:     15 * time.Minute,
	}
}

// NewLoginProtection creates a login protection instance.
func NewLoginProtection(cfg LoginProtectionConfig) *LoginProtection {
	def := DefaultLoginProtectionConfig()
	if cfg.IPRateLimit <= 0 {
		cfg.IPRateLimit = def.IPRateLimit
	}
	if cfg.IPBurst <= 0 {
		cfg.IPBurst = def.IPBurst
	}
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = def.MaxFailedAttempts
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = def.LockoutDuration
	}
	if cfg.AttemptWindow <= 0 {
		cfg.AttemptWindow = def.AttemptWindow
	}

	return &LoginProtection{
		ipLimiters:        newLimiterCache[string](cfg.IPRateLimit, cfg.IPBurst),
		attempts:          make(map[string]*loginAttempt),
		maxFailedAttempts: cfg.MaxFailedAttempts,
		lockoutDuration:   cfg.LockoutDuration,
		attemptWindow:     cfg.AttemptWindow,
		now:               time.Now,
	}
}

// CheckIPRateLimit reports whether a login request from ip may proceed.
func (lp *LoginProtection) CheckIPRateLimit(ip string) bool {
	return lp.ipLimiters.get(ip).Allow()
}

// IsLocked reports whether ip is locked out and for how long.
func (lp *LoginProtection) IsLocked(ip string) (bool, time.Duration) {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	a, ok := lp.attempts[ip]
	if !ok {
		return false, 0
	}
	now := lp.now()
	if now.Before(a.lockedUntil) {
		return true, a.lockedUntil.Sub(now)
	}
	return false, 0
}

// RecordFailedAttempt records a failed login from ip and reports whether
// it is now locked out.
func (lp *LoginProtection) RecordFailedAttempt(ip string) (bool, time.Duration) {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	now := lp.now()
	lp.prune(now)

	a, ok := lp.attempts[ip]
	if !ok || now.Sub(a.firstFailed) > lp.attemptWindow {
		lockouts := 0
		if ok {
			lockouts = a.lockouts
		}
		a = &loginAttempt{firstFailed: now, lockouts: lockouts}
		lp.attempts[ip] = a
	}
	a.count++

	if a.count < lp.maxFailedAttempts {
		return false, 0
	}
	d := lp.lockoutDuration << a.lockouts
	a.lockouts++
	a.count = 0
	a.firstFailed = now
	a.lockedUntil = now.Add(d)
	return true, d
}

// RecordSuccess clears the failure history of ip.
func (lp *LoginProtection) RecordSuccess(ip string) {
	lp.mu.Lock()
	delete(lp.attempts, ip)
	lp.mu.Unlock()
}

// prune drops expired entries. Callers hold lp.mu.
func (lp *LoginProtection) prune(now time.Time) {
	if len(lp.attempts) < maxTrackedClients {
		return
	}
	for ip, a := range lp.attempts {
		if now.After(a.lockedUntil) && now.Sub(a.firstFailed) > lp.attemptWindow {
			delete(lp.attempts, ip)
		}
	}
}
