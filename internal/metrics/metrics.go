// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus collectors of the gateway.
//
// All collectors live on a private registry exposed through [Metrics.Handler].
// Every recording method is safe on a nil *Metrics, so components accept an
// optional *Metrics without guarding each call.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "invoice_gateway"

// Results used as label values.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultRejected = "rejected"
)

// Metrics groups the collectors recorded by the adapter, service and HTTP
// layers.
type Metrics struct {
	registry *prometheus.Registry

	remoteCalls        *prometheus.CounterVec
	remoteRetries      *prometheus.CounterVec
	authAttempts       *prometheus.CounterVec
	allocationOutcomes *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	backendUp          prometheus.Gauge
}

// New builds the collectors and registers them, together with the Go runtime
// and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "remote_calls_total",
			Help: "Backend remote calls by model, method and final result.",
		}, []string{"model", "method", "result"}),
		remoteRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "remote_call_retries_total",
			Help: "Backend remote call attempts beyond the first.",
		}, []string{"model", "method"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "auth_attempts_total",
			Help: "Backend authentication attempts by result.",
		}, []string{"result"}),
		allocationOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "allocation_outcomes_total",
			Help: "Per-invoice allocation outcomes by status.",
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "Handled HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		backendUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "backend_up",
			Help: "1 when the last backend health probe authenticated, else 0.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.remoteCalls,
		m.remoteRetries,
		m.authAttempts,
		m.allocationOutcomes,
		m.httpRequests,
		m.httpDuration,
		m.backendUp,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) RemoteCall(model, method, result string) {
	if m == nil {
		return
	}
	m.remoteCalls.WithLabelValues(model, method, result).Inc()
}

func (m *Metrics) RemoteRetry(model, method string) {
	if m == nil {
		return
	}
	m.remoteRetries.WithLabelValues(model, method).Inc()
}

func (m *Metrics) AuthAttempt(result string) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) AllocationOutcome(status string) {
	if m == nil {
		return
	}
	m.allocationOutcomes.WithLabelValues(status).Inc()
}

// HTTPRequest records one handled request.
func (m *Metrics) HTTPRequest(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) SetBackendUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.backendUp.Set(1)
		return
	}
	m.backendUp.Set(0)
}
