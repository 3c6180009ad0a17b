// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

// paymentAuditRepository writes invoice snapshots and allocation outcomes.
// Each call is a single multi-row insert inside one transaction, so a batch
// is stored whole or not at all. A transaction that fails with a transient
// error is retried from the start.
type paymentAuditRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPaymentAuditRepository(db *DB, logger *logger.Logger) PaymentAuditRepository {
	logger.Debug().Msg("creating payment audit repository")
	return &paymentAuditRepository{
		db:     db,
		logger: logger,
	}
}

func (r *paymentAuditRepository) LogInvoiceStates(ctx context.Context, guid string, stage models.LogStage, invoices []models.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*paymentAuditRepository.LogInvoiceStates").
		Str("guid", guid).
		Str("stage", string(stage)).
		Int("count", len(invoices)).
		Msg("logging invoice states")

	insert := buildInvoiceStatesInsert(r.db.builder, guid, stage, invoices)
	return r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.insertInTx(ctx, "*paymentAuditRepository.LogInvoiceStates", insert)
	})
}

func (r *paymentAuditRepository) SaveResults(ctx context.Context, guid string, results []models.AllocationResult) error {
	if len(results) == 0 {
		return nil
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*paymentAuditRepository.SaveResults").
		Str("guid", guid).
		Int("count", len(results)).
		Msg("saving allocation results")

	insert := buildInvoiceResultsInsert(r.db.builder, guid, results)
	return r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.insertInTx(ctx, "*paymentAuditRepository.SaveResults", insert)
	})
}
