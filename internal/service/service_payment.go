// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/MKhiriev/go-invoice-gateway/internal/store"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

// paymentService orchestrates one pay request: duplicate guard, customer
// resolution, audit snapshots and allocation.
type paymentService struct {
	backends adapter.BackendFactory
	requests store.PaymentRequestRepository
	audit    store.PaymentAuditRepository

	policy      models.PaymentPolicy
	journalName string

	metrics *metrics.Metrics
	tracer  trace.Tracer
	logger  *logger.Logger
}

// PaymentServiceOptions carries the policy knobs of the payment service.
type PaymentServiceOptions struct {
	Policy      models.PaymentPolicy
	JournalName string
	Metrics     *metrics.Metrics
}

func NewPaymentService(
	backends adapter.BackendFactory,
	requests store.PaymentRequestRepository,
	audit store.PaymentAuditRepository,
	opts PaymentServiceOptions,
	logger *logger.Logger,
) PaymentService {
	policy := opts.Policy
	if policy == "" {
		policy = models.PolicyPartial
	}

	return &paymentService{
		backends:    backends,
		requests:    requests,
		audit:       audit,
		policy:      policy,
		journalName: opts.JournalName,
		metrics:     opts.Metrics,
		tracer:      otel.Tracer(tracerName),
		logger:      logger,
	}
}

// PayInvoices settles the customer's open invoices with order.TotalAmount.
//
// The request GUID is registered first, so a repeated GUID fails with
// [store.ErrDuplicateRequest] before anything else happens. Every later
// rejection, an exact-policy mismatch included, leaves the GUID used.
// Failing to store the pre-payment snapshot aborts the request; failures
// after the allocation are logged and do not change the summary.
func (s *paymentService) PayInvoices(ctx context.Context, order models.PaymentOrder) (models.PaymentSummary, error) {
	ctx, span := s.tracer.Start(ctx, "payment.PayInvoices", trace.WithAttributes(
		attribute.String("guid", order.GUID),
		attribute.String("source", order.Source),
	))
	defer span.End()

	summary, err := s.payInvoices(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return summary, err
}

func (s *paymentService) payInvoices(ctx context.Context, order models.PaymentOrder) (models.PaymentSummary, error) {
	log := logger.FromContext(ctx).With().Str("guid", order.GUID).Logger()
	summary := models.PaymentSummary{GUID: order.GUID}

	err := s.requests.Register(ctx, models.PaymentRequest{
		GUID:        order.GUID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		Source:      order.Source,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRequest) {
			log.Warn().Msg("duplicate payment request")
		}
		return summary, fmt.Errorf("error registering payment request: %w", err)
	}

	backend := s.backends.NewBackend()
	query := NewInvoiceQueryService(backend)

	summary.Resolution, err = query.ResolveAccount(ctx, order.CustomerID)
	if err != nil {
		return summary, err
	}

	account, ok := summary.Resolution.Account()
	if !ok {
		log.Info().Str("outcome", summary.Resolution.Outcome.String()).Msg("customer not resolved, nothing to pay")
		return summary, nil
	}

	invoices, err := query.OpenInvoices(ctx, account.ID)
	if err != nil {
		return summary, err
	}
	summary.OpenInvoices = invoices
	if len(invoices) == 0 {
		log.Info().Int64("account_id", account.ID).Msg("no open invoices")
		return summary, nil
	}

	if s.policy == models.PolicyExact {
		if balance := models.SumResidual(invoices); !order.TotalAmount.Equal(balance) {
			return summary, fmt.Errorf("%w: requested %s, open balance %s", ErrAmountMismatch, order.TotalAmount, balance)
		}
	}

	journalID, err := s.resolveJournal(ctx, backend)
	if err != nil {
		return summary, err
	}

	if err = s.audit.LogInvoiceStates(ctx, order.GUID, models.StageBefore, invoices); err != nil {
		log.Err(err).Msg("error storing invoice states before payment")
		return summary, fmt.Errorf("%w: %w", ErrAuditFailed, err)
	}

	summary.Results = NewAllocator(backend, s.metrics).Allocate(ctx, models.AllocationInput{
		Invoices:    invoices,
		TotalAmount: order.TotalAmount,
		PaymentDate: order.Date,
		Tag:         order.GUID,
		JournalID:   journalID,
	})

	s.recordAfter(ctx, query, order.GUID, invoices, summary.Results)

	log.Info().
		Int64("account_id", account.ID).
		Str("total_amount", order.TotalAmount.String()).
		Str("total_applied", models.TotalApplied(summary.Results).String()).
		Int("invoices", len(summary.Results)).
		Msg("payment request processed")

	return summary, nil
}

// resolveJournal looks the configured journal up once per request. Zero
// means no journal is configured.
func (s *paymentService) resolveJournal(ctx context.Context, backend adapter.Backend) (int64, error) {
	if s.journalName == "" {
		return 0, nil
	}

	id, err := backend.FindJournal(ctx, s.journalName)
	switch {
	case errors.Is(err, adapter.ErrRecordNotFound):
		return 0, fmt.Errorf("%w: %q", ErrJournalNotFound, s.journalName)
	case err != nil:
		return 0, fmt.Errorf("error looking up payment journal: %w", err)
	}

	return id, nil
}

func (s *paymentService) recordAfter(ctx context.Context, query InvoiceQueryService, guid string, before []models.Invoice, results []models.AllocationResult) {
	log := logger.FromContext(ctx)

	after, err := query.ReadInvoices(ctx, models.InvoiceIDs(before))
	if err != nil {
		log.Err(err).Str("guid", guid).Msg("error re-reading invoices after payment")
	} else if err = s.audit.LogInvoiceStates(ctx, guid, models.StageAfter, after); err != nil {
		log.Err(err).Str("guid", guid).Msg("error storing invoice states after payment")
	}

	if err = s.audit.SaveResults(ctx, guid, results); err != nil {
		log.Err(err).Str("guid", guid).Msg("error storing payment results")
	}
}
