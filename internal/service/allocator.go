// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

const tracerName = "github.com/MKhiriev/go-invoice-gateway/internal/service"

var errNoMethodLine = errors.New(models.ReasonNoSettlementMethod)

// Allocator spreads a payment over invoices, oldest first, and registers one
// backend payment per invoice it can pay.
//
// Invoices are processed strictly one after another. A failure on one invoice
// is recorded in its outcome and the run continues with the next one; the
// amount is only consumed by invoices that were actually paid.
type Allocator struct {
	backend adapter.Backend
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// NewAllocator binds an allocator to one backend session.
func NewAllocator(backend adapter.Backend, m *metrics.Metrics) *Allocator {
	return &Allocator{
		backend: backend,
		metrics: m,
		tracer:  otel.Tracer(tracerName),
	}
}

// Allocate runs one allocation and returns the outcomes in processing order.
// The sum of applied amounts never exceeds in.TotalAmount and no invoice
// receives more than its residual at read time.
func (a *Allocator) Allocate(ctx context.Context, in models.AllocationInput) []models.AllocationResult {
	ctx, span := a.tracer.Start(ctx, "allocator.Allocate", trace.WithAttributes(
		attribute.Int("invoices", len(in.Invoices)),
		attribute.String("total_amount", in.TotalAmount.String()),
	))
	defer span.End()

	ordered := sortInvoices(in.Invoices)
	remaining := in.TotalAmount
	results := make([]models.AllocationResult, 0, len(ordered))

	for _, inv := range ordered {
		result := a.allocateInvoice(ctx, inv, remaining, in)
		remaining = remaining.Sub(result.AmountApplied)

		a.metrics.AllocationOutcome(string(result.Status))
		results = append(results, result)
	}

	span.SetAttributes(attribute.String("total_applied", models.TotalApplied(results).String()))

	return results
}

func (a *Allocator) allocateInvoice(ctx context.Context, inv models.Invoice, remaining decimal.Decimal, in models.AllocationInput) models.AllocationResult {
	ctx, span := a.tracer.Start(ctx, "allocator.invoice", trace.WithAttributes(
		attribute.Int64("invoice_id", inv.ID),
	))
	defer span.End()

	log := logger.FromContext(ctx).With().Int64("invoice_id", inv.ID).Logger()

	result := models.AllocationResult{
		InvoiceID:       inv.ID,
		InvoiceTotal:    inv.Total(),
		AmountApplied:   decimal.Zero,
		AmountRemaining: inv.AmountResidual,
	}

	// An exhausted amount wins over every other check.
	switch {
	case !remaining.IsPositive():
		result.Status = models.OutcomeSkipped
		result.Reason = models.ReasonInsufficientFunds
		return result
	case inv.Malformed():
		log.Warn().Msg("skipping malformed invoice")
		result.Status = models.OutcomeFailed
		result.Reason = models.ReasonMalformedInvoice
		return result
	case !inv.Residual().IsPositive():
		result.Status = models.OutcomeSkipped
		result.Reason = models.ReasonAlreadySettled
		return result
	}

	apply := decimal.Min(inv.Residual(), remaining)
	span.SetAttributes(attribute.String("amount", apply.String()))

	registerID, err := a.registerPayment(ctx, inv.ID, apply, in)
	result.PaymentRegisterID = registerID
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error().Err(err).Str("amount", apply.String()).Msg("payment registration failed")

		result.Status = models.OutcomeFailed
		result.Reason = err.Error()
		return result
	}

	log.Info().Str("amount", apply.String()).Int64("payment_register_id", registerID).Msg("payment completed")

	result.Status = models.OutcomeCompleted
	result.AmountApplied = apply
	result.AmountRemaining = a.rereadResidual(ctx, inv.ID)
	return result
}

// registerPayment drives the four-step payment protocol for one invoice and
// returns the id of the payment wizard, zero if it was never created.
func (a *Allocator) registerPayment(ctx context.Context, invoiceID int64, amount decimal.Decimal, in models.AllocationInput) (int64, error) {
	pctx, err := a.backend.OpenPaymentContext(ctx, invoiceID)
	if err != nil {
		return 0, err
	}

	registerID, err := a.backend.CreateDraftPayment(ctx, pctx, models.PaymentDraft{
		Amount:    amount,
		Date:      in.PaymentDate,
		Memo:      in.Tag,
		JournalID: in.JournalID,
	})
	if err != nil {
		return 0, err
	}

	lines, err := a.backend.ReadMethodLines(ctx, pctx, registerID)
	if err != nil {
		return registerID, err
	}
	if len(lines) == 0 {
		return registerID, errNoMethodLine
	}

	if err = a.backend.ConfirmPayment(ctx, pctx, registerID, lines[0], amount); err != nil {
		return registerID, err
	}

	return registerID, nil
}

// rereadResidual returns the residual the backend reports after payment. The
// value is invalid when it could not be read.
func (a *Allocator) rereadResidual(ctx context.Context, invoiceID int64) decimal.NullDecimal {
	invoices, err := a.backend.ReadInvoices(ctx, []int64{invoiceID})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("invoice_id", invoiceID).Msg("could not re-read invoice after payment")
		return decimal.NullDecimal{}
	}

	for _, inv := range invoices {
		if inv.ID == invoiceID {
			return inv.AmountResidual
		}
	}

	return decimal.NullDecimal{}
}

// sortInvoices returns a copy ordered by date, then id. Invoices without a
// date come first.
func sortInvoices(invoices []models.Invoice) []models.Invoice {
	ordered := slices.Clone(invoices)
	slices.SortStableFunc(ordered, func(a, b models.Invoice) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return ordered
}
