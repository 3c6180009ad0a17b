// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

type customerService struct {
	backends adapter.BackendFactory
	logger   *logger.Logger
}

// NewCustomerService opens a new backend session for every call.
func NewCustomerService(backends adapter.BackendFactory, logger *logger.Logger) CustomerService {
	return &customerService{
		backends: backends,
		logger:   logger,
	}
}

func (s *customerService) CheckCustomer(ctx context.Context, customerID string) (models.AccountResolution, error) {
	return NewInvoiceQueryService(s.backends.NewBackend()).ResolveAccount(ctx, customerID)
}

// TotalAmount resolves the customer and, when exactly one account matched,
// adds up the residuals of its open invoices.
func (s *customerService) TotalAmount(ctx context.Context, customerID string) (models.CustomerBalance, error) {
	query := NewInvoiceQueryService(s.backends.NewBackend())

	resolution, err := query.ResolveAccount(ctx, customerID)
	if err != nil {
		return models.CustomerBalance{}, err
	}

	balance := models.CustomerBalance{Resolution: resolution, Total: decimal.Zero}
	account, ok := resolution.Account()
	if !ok {
		return balance, nil
	}

	invoices, err := query.OpenInvoices(ctx, account.ID)
	if err != nil {
		return models.CustomerBalance{}, err
	}

	balance.Invoices = sortInvoices(invoices)
	balance.Total = models.SumResidual(invoices)

	return balance, nil
}
