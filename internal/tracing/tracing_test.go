// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tracing

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
)

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogExporter_ExportSpans(t *testing.T) {
	var buf bytes.Buffer
	exp := NewLogExporter(bufferLogger(&buf))

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	parentID, _ := trace.SpanIDFromHex("1112131415161718")
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	spans := tracetest.SpanStubs{
		{
			Name:        "allocator.invoice",
			SpanContext: trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID}),
			Parent:      trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: parentID}),
			StartTime:   start,
			EndTime:     start.Add(250 * time.Millisecond),
			Attributes:  []attribute.KeyValue{attribute.Int64("invoice_id", 7)},
			Status:      sdktrace.Status{Code: codes.Error, Description: "no settlement method"},
		},
		{
			Name:        "adapter.Invoke",
			SpanContext: trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: parentID}),
			StartTime:   start,
			EndTime:     start.Add(time.Second),
		},
	}.Snapshots()

	require.NoError(t, exp.ExportSpans(context.Background(), spans))

	entries := logEntries(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "allocator.invoice", entries[0]["span"])
	assert.Equal(t, "no settlement method", entries[0]["error"])
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", entries[0]["trace_id"])
	assert.Equal(t, "1112131415161718", entries[0]["parent_span_id"])
	assert.Equal(t, map[string]any{"invoice_id": float64(7)}, entries[0]["attributes"])
	assert.InDelta(t, 250, entries[0]["duration"], 0.001)

	assert.Equal(t, "debug", entries[1]["level"])
	assert.NotContains(t, entries[1], "parent_span_id")
}

func TestLogExporter_DropsAfterShutdown(t *testing.T) {
	var buf bytes.Buffer
	exp := NewLogExporter(bufferLogger(&buf))

	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.ExportSpans(context.Background(), tracetest.SpanStubs{{Name: "late"}}.Snapshots()))

	assert.Zero(t, buf.Len())
}

func TestLogExporter_CanceledContext(t *testing.T) {
	exp := NewLogExporter(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := exp.ExportSpans(ctx, tracetest.SpanStubs{{Name: "x"}}.Snapshots())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewProvider_ExportsWithResource(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := NewProvider(config.Tracing{Enabled: true, SampleRatio: 1}, "invoice-gateway", "1.2.3", exp)

	_, span := tp.Tracer("test").Start(context.Background(), "payment.PayInvoices")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "payment.PayInvoices", spans[0].Name)

	res := map[attribute.Key]string{}
	for _, kv := range spans[0].Resource.Attributes() {
		res[kv.Key] = kv.Value.Emit()
	}
	assert.Equal(t, "invoice-gateway", res["service.name"])
	assert.Equal(t, "1.2.3", res["service.version"])

	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewProvider_SampleRatio(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := NewProvider(config.Tracing{Enabled: true, SampleRatio: 1e-12}, "invoice-gateway", "", exp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	for range 20 {
		_, span := tp.Tracer("test").Start(context.Background(), "adapter.Invoke")
		span.End()
	}
	require.NoError(t, tp.ForceFlush(context.Background()))

	assert.Empty(t, exp.GetSpans())
}

func TestSetup(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	t.Run("disabled keeps the global provider", func(t *testing.T) {
		shutdown := Setup(config.Tracing{SampleRatio: 1}, "invoice-gateway", "", logger.Nop())

		_, isSDK := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		assert.False(t, isSDK)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("enabled installs an sdk provider", func(t *testing.T) {
		var buf bytes.Buffer
		shutdown := Setup(config.Tracing{Enabled: true, SampleRatio: 1}, "invoice-gateway", "", bufferLogger(&buf))

		_, isSDK := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		require.True(t, isSDK)

		_, span := otel.Tracer("test").Start(context.Background(), "allocator.Allocate")
		span.End()
		require.NoError(t, shutdown(context.Background()))

		assert.Contains(t, buf.String(), `"span":"allocator.Allocate"`)
	})
}
