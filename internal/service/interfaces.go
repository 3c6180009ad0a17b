// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-invoice-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// InvoiceQueryService reads customers and invoices from one backend session.
type InvoiceQueryService interface {
	// ResolveAccount maps a customer lookup key onto backend accounts. No
	// match and several matches are reported in the resolution, not as
	// errors.
	ResolveAccount(ctx context.Context, key string) (models.AccountResolution, error)
	// OpenInvoices returns the posted, unpaid customer invoices of an
	// account. An empty list is a normal outcome.
	OpenInvoices(ctx context.Context, accountID int64) ([]models.Invoice, error)
	// ReadInvoices returns a fresh snapshot of the given invoices.
	ReadInvoices(ctx context.Context, ids []int64) ([]models.Invoice, error)
}

// CustomerService answers the read-only customer endpoints.
type CustomerService interface {
	CheckCustomer(ctx context.Context, customerID string) (models.AccountResolution, error)
	TotalAmount(ctx context.Context, customerID string) (models.CustomerBalance, error)
}

// PaymentService settles a customer's open invoices.
type PaymentService interface {
	PayInvoices(ctx context.Context, order models.PaymentOrder) (models.PaymentSummary, error)
}

// AuthService issues and verifies caller tokens.
type AuthService interface {
	// Enabled reports whether caller tokens are required.
	Enabled() bool
	CreateToken(ctx context.Context, source string, ttl time.Duration) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build and version data.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the gateway's own dependencies are usable.
type HealthService interface {
	Check(ctx context.Context) error
}
