// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-invoice-gateway/internal/mock"
	"github.com/MKhiriev/go-invoice-gateway/internal/store"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

// recordSpans installs a recording tracer provider for the duration of the
// test. Services must be built after the call.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func spansNamed(spans []sdktrace.ReadOnlySpan, name string) []sdktrace.ReadOnlySpan {
	var out []sdktrace.ReadOnlySpan
	for _, s := range spans {
		if s.Name() == name {
			out = append(out, s)
		}
	}
	return out
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]any {
	attrs := make(map[attribute.Key]any)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value.AsInterface()
	}
	return attrs
}

func TestAllocate_RecordsSpans(t *testing.T) {
	sr := recordSpans(t)
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)

	pctx := models.PaymentContext{"active_ids": []int64{1}}
	backend.EXPECT().OpenPaymentContext(gomock.Any(), int64(1)).Return(pctx, nil)
	backend.EXPECT().CreateDraftPayment(gomock.Any(), pctx, gomock.Any()).Return(int64(11), nil)
	backend.EXPECT().ReadMethodLines(gomock.Any(), pctx, int64(11)).Return(nil, nil)
	expectPayment(backend, 2, 12, "30", "", "0")

	NewAllocator(backend, nil).Allocate(context.Background(), models.AllocationInput{
		Invoices: []models.Invoice{
			invoice(1, "40", "40", "2024-01-01"),
			invoice(2, "30", "30", "2024-01-02"),
		},
		TotalAmount: dec("30"),
	})

	spans := sr.Ended()

	root := spansNamed(spans, "allocator.Allocate")
	require.Len(t, root, 1)
	assert.Equal(t, map[attribute.Key]any{
		"invoices":      int64(2),
		"total_amount":  "30",
		"total_applied": "30",
	}, spanAttrs(root[0]))

	perInvoice := spansNamed(spans, "allocator.invoice")
	require.Len(t, perInvoice, 2)
	for _, s := range perInvoice {
		assert.Equal(t, root[0].SpanContext().SpanID(), s.Parent().SpanID())
	}

	failed, paid := perInvoice[0], perInvoice[1]
	assert.Equal(t, int64(1), spanAttrs(failed)["invoice_id"])
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.Equal(t, models.ReasonNoSettlementMethod, failed.Status().Description)

	assert.Equal(t, int64(2), spanAttrs(paid)["invoice_id"])
	assert.Equal(t, "30", spanAttrs(paid)["amount"])
	assert.Equal(t, codes.Unset, paid.Status().Code)
}

func TestAllocate_SkippedInvoiceSpanHasNoAmount(t *testing.T) {
	sr := recordSpans(t)
	backend := mock.NewMockBackend(gomock.NewController(t))

	NewAllocator(backend, nil).Allocate(context.Background(), models.AllocationInput{
		Invoices:    []models.Invoice{invoice(1, "10", "10", "2024-01-01")},
		TotalAmount: dec("0"),
	})

	perInvoice := spansNamed(sr.Ended(), "allocator.invoice")
	require.Len(t, perInvoice, 1)
	assert.NotContains(t, spanAttrs(perInvoice[0]), attribute.Key("amount"))
	assert.Equal(t, codes.Unset, perInvoice[0].Status().Code)
}

func TestPayInvoices_RecordsSpan(t *testing.T) {
	sr := recordSpans(t)
	f := newPaymentFixture(t)
	f.requests.EXPECT().Register(gomock.Any(), gomock.Any()).Return(store.ErrDuplicateRequest)

	_, err := f.service(PaymentServiceOptions{}).PayInvoices(context.Background(), testOrder())
	require.ErrorIs(t, err, store.ErrDuplicateRequest)

	spans := spansNamed(sr.Ended(), "payment.PayInvoices")
	require.Len(t, spans, 1)
	assert.Equal(t, map[attribute.Key]any{
		"guid":   "7f1c2e7a-guid",
		"source": "esadad",
	}, spanAttrs(spans[0]))
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Status().Description, store.ErrDuplicateRequest.Error())
}
