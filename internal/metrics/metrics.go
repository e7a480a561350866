// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics collects Prometheus metrics for vitrine and exposes them
// for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
)

// Recorder is the metrics sink used by services and middleware.
type Recorder interface {
	RecordHTTPRequest(route, method string, status int, d time.Duration)
	RecordUnlock(kind, outcome string)
	RecordOrder(category string)
	RecordChat(provider, outcome string, d time.Duration)
	RecordImport(written, skipped int)
	RecordBackup(outcome string)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	unlocks      *prometheus.CounterVec
	orders       *prometheus.CounterVec
	chatReplies  *prometheus.CounterVec
	chatLatency  prometheus.Histogram
	importedKeys prometheus.Counter
	skippedKeys  prometheus.Counter
	backups      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitrine_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vitrine_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		unlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitrine_unlock_attempts_total",
			Help: "Secret code unlock attempts by kind and outcome.",
		}, []string{"kind", "outcome"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitrine_orders_total",
			Help: "WhatsApp orders submitted by item category.",
		}, []string{"category"}),
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitrine_chat_replies_total",
			Help: "Chat relay replies by provider and outcome.",
		}, []string{"provider", "outcome"}),
		chatLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vitrine_chat_latency_seconds",
			Help:    "Chat provider latency.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
		importedKeys: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitrine_import_keys_written_total",
			Help: "Document keys written by imports.",
		}),
		skippedKeys: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitrine_import_keys_skipped_total",
			Help: "Document keys skipped by imports for being outside the namespace.",
		}),
		backups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitrine_backups_total",
			Help: "Scheduled backups by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.unlocks,
		c.orders,
		c.chatReplies,
		c.chatLatency,
		c.importedKeys,
		c.skippedKeys,
		c.backups,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(route).Observe(d.Seconds())
}

func (c *Collector) RecordUnlock(kind, outcome string) {
	c.unlocks.WithLabelValues(kind, outcome).Inc()
}

func (c *Collector) RecordOrder(category string) {
	c.orders.WithLabelValues(category).Inc()
}

func (c *Collector) RecordChat(provider, outcome string, d time.Duration) {
	c.chatReplies.WithLabelValues(provider, outcome).Inc()
	if d > 0 {
		c.chatLatency.Observe(d.Seconds())
	}
}

func (c *Collector) RecordImport(written, skipped int) {
	c.importedKeys.Add(float64(written))
	c.skippedKeys.Add(float64(skipped))
}

func (c *Collector) RecordBackup(outcome string) {
	c.backups.WithLabelValues(outcome).Inc()
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordUnlock(string, string)                          {}
func (Nop) RecordOrder(string)                                   {}
func (Nop) RecordChat(string, string, time.Duration)             {}
func (Nop) RecordImport(int, int)                                {}
func (Nop) RecordBackup(string)                                  {}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop{}
	}
	return r
}

// Handler returns the HTTP handler serving metrics scraped from gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
