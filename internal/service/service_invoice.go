// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

type invoiceQueryService struct {
	backend adapter.Backend
}

// NewInvoiceQueryService binds the query service to one backend session.
func NewInvoiceQueryService(backend adapter.Backend) InvoiceQueryService {
	return &invoiceQueryService{backend: backend}
}

func (s *invoiceQueryService) ResolveAccount(ctx context.Context, key string) (models.AccountResolution, error) {
	accounts, err := s.backend.SearchPartners(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "invoiceQueryService.ResolveAccount").Msg("partner search failed")
		return models.AccountResolution{}, fmt.Errorf("error resolving customer: %w", err)
	}

	resolution := models.NewAccountResolution(accounts)
	logger.FromContext(ctx).Debug().
		Str("outcome", resolution.Outcome.String()).
		Int("matches", len(accounts)).
		Msg("customer resolved")

	return resolution, nil
}

// OpenInvoices keeps only invoices that are still payable, in case the
// backend returned records outside the requested domain.
func (s *invoiceQueryService) OpenInvoices(ctx context.Context, accountID int64) ([]models.Invoice, error) {
	invoices, err := s.backend.OpenInvoices(ctx, accountID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "invoiceQueryService.OpenInvoices").Int64("account_id", accountID).Msg("invoice search failed")
		return nil, fmt.Errorf("error fetching open invoices: %w", err)
	}

	open := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if isOpen(inv) {
			open = append(open, inv)
		}
	}

	return open, nil
}

func (s *invoiceQueryService) ReadInvoices(ctx context.Context, ids []int64) ([]models.Invoice, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	invoices, err := s.backend.ReadInvoices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error reading invoices: %w", err)
	}

	return invoices, nil
}

// isOpen reports whether an invoice matches the open-invoice filter. Fields
// the backend did not return are not held against the record.
func isOpen(inv models.Invoice) bool {
	if inv.State != "" && inv.State != models.InvoiceStatePosted {
		return false
	}
	if inv.MoveType != "" && inv.MoveType != models.MoveTypeOutInvoice {
		return false
	}
	if inv.AmountResidual.Valid && !inv.AmountResidual.Decimal.IsPositive() {
		return false
	}
	return true
}
