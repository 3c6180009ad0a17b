// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
)

// BackendHealthWorker periodically logs in to the accounting backend with a
// fresh session and publishes the result as the backend_up gauge.
type BackendHealthWorker struct {
	backends adapter.BackendFactory
	interval time.Duration
	metrics  *metrics.Metrics
	logger   *logger.Logger

	up atomic.Bool
}

func NewBackendHealthWorker(backends adapter.BackendFactory, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *BackendHealthWorker {
	return &BackendHealthWorker{
		backends: backends,
		interval: interval,
		metrics:  m,
		logger:   logger,
	}
}

// Run probes once right away and then every interval until ctx is done.
func (w *BackendHealthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("backend health worker started")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.probe(ctx)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("backend health worker stopped")
				return
			case <-ticker.C:
				w.probe(ctx)
			}
		}
	}()
}

// Up reports the result of the last probe.
func (w *BackendHealthWorker) Up() bool {
	return w.up.Load()
}

func (w *BackendHealthWorker) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.backends.NewBackend().Ping(probeCtx)
	up := err == nil

	if was := w.up.Swap(up); was != up || !up {
		event := w.logger.Info()
		if !up {
			event = w.logger.Warn().Err(err)
		}
		event.Bool("backend_up", up).Msg("backend health probe")
	}

	w.metrics.SetBackendUp(up)
}
