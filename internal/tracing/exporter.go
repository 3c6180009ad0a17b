// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tracing

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
)

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

// LogExporter writes every finished span as one debug entry.
type LogExporter struct {
	logger  *logger.Logger
	stopped atomic.Bool
}

// NewLogExporter returns a span exporter that logs to log.
func NewLogExporter(log *logger.Logger) *LogExporter {
	return &LogExporter{logger: log}
}

// ExportSpans implements [sdktrace.SpanExporter].
func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if e.stopped.Load() {
		return nil
	}

	for _, span := range spans {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.logSpan(span)
	}
	return nil
}

// Shutdown implements [sdktrace.SpanExporter]. Spans exported afterwards are
// dropped.
func (e *LogExporter) Shutdown(context.Context) error {
	e.stopped.Store(true)
	return nil
}

func (e *LogExporter) logSpan(span sdktrace.ReadOnlySpan) {
	sc := span.SpanContext()

	event := e.logger.Debug()
	if span.Status().Code == codes.Error {
		event = e.logger.Warn().Str("error", span.Status().Description)
	}

	attrs := zerolog.Dict()
	for _, kv := range span.Attributes() {
		attrs = attrs.Interface(string(kv.Key), kv.Value.AsInterface())
	}

	event = event.
		Str("span", span.Name()).
		Str("trace_id", sc.TraceID().String()).
		Str("span_id", sc.SpanID().String()).
		Dur("duration", span.EndTime().Sub(span.StartTime())).
		Dict("attributes", attrs)
	if parent := span.Parent(); parent.IsValid() {
		event = event.Str("parent_span_id", parent.SpanID().String())
	}

	event.Msg("span finished")
}
