// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the accounting backend's external API.
//
// Layers, bottom-up:
//   - [Transport]: one JSON-RPC round trip over a shared resty client;
//   - [Session]: obtains and caches the session token;
//   - [Invoker]: bounded retry with re-authentication around every call;
//   - [Backend]: typed operations (partners, invoices, journals and the
//     payment wizard) built on the invoker.
//
// A [BackendFactory] hands out a fresh Backend, with its own session, per
// inbound request.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-invoice-gateway/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend is the typed view of the accounting backend used by the services.
type Backend interface {
	// Ping authenticates and reports whether a session could be opened.
	Ping(ctx context.Context) error

	// SearchPartners returns every partner whose mobile equals key.
	SearchPartners(ctx context.Context, key string) ([]models.Account, error)

	// OpenInvoices returns posted customer invoices of accountID with a
	// positive residual.
	OpenInvoices(ctx context.Context, accountID int64) ([]models.Invoice, error)

	// ReadInvoices reads the current state of the given invoices.
	ReadInvoices(ctx context.Context, ids []int64) ([]models.Invoice, error)

	// FindJournal returns the id of the journal called name, or
	// ErrRecordNotFound.
	FindJournal(ctx context.Context, name string) (int64, error)

	// OpenPaymentContext starts the payment-registration flow for one
	// invoice and returns the context every later step must carry.
	OpenPaymentContext(ctx context.Context, invoiceID int64) (models.PaymentContext, error)

	// CreateDraftPayment creates the payment wizard and returns its id.
	CreateDraftPayment(ctx context.Context, pctx models.PaymentContext, draft models.PaymentDraft) (int64, error)

	// ReadMethodLines returns the settlement method lines available to the
	// wizard.
	ReadMethodLines(ctx context.Context, pctx models.PaymentContext, registerID int64) ([]int64, error)

	// ConfirmPayment selects methodLineID, sets amount and creates the
	// payment.
	ConfirmPayment(ctx context.Context, pctx models.PaymentContext, registerID, methodLineID int64, amount decimal.Decimal) error
}

// BackendFactory creates an independent Backend with its own session.
type BackendFactory interface {
	NewBackend() Backend
}
