// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tracing installs the process-wide OpenTelemetry tracer provider.
// Finished spans are written to the application log.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
)

// ShutdownFunc flushes buffered spans and stops the provider.
type ShutdownFunc func(ctx context.Context) error

// NewProvider builds a tracer provider that samples cfg.SampleRatio of root
// spans and hands finished spans to exporter in batches.
func NewProvider(cfg config.Tracing, service, version string, exporter sdktrace.SpanExporter) *sdktrace.TracerProvider {
	res := sdkresource.NewSchemaless(
		attribute.String("service.name", service),
		attribute.String("service.version", version),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
}

// Setup installs a log-backed provider as the global one when tracing is
// enabled. With tracing disabled the global no-op provider stays in place
// and the returned function does nothing.
func Setup(cfg config.Tracing, service, version string, log *logger.Logger) ShutdownFunc {
	if !cfg.Enabled {
		log.Debug().Msg("tracing disabled")
		return func(context.Context) error { return nil }
	}

	tp := NewProvider(cfg, service, version, NewLogExporter(log))
	otel.SetTracerProvider(tp)

	log.Info().Float64("sample_ratio", cfg.SampleRatio).Msg("tracing enabled")
	return tp.Shutdown
}
