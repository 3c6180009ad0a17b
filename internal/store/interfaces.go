// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-invoice-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PaymentRequestRepository guards against a second submission of the same
// payment attempt.
type PaymentRequestRepository interface {
	// Register records the request under its GUID. A GUID that was already
	// registered yields [ErrDuplicateRequest].
	Register(ctx context.Context, request models.PaymentRequest) error
	// Exists reports whether a request with the given GUID was registered.
	Exists(ctx context.Context, guid string) (bool, error)
}

// PaymentAuditRepository keeps the audit trail of a payment request.
type PaymentAuditRepository interface {
	// LogInvoiceStates stores a snapshot of invoices taken at the given stage.
	LogInvoiceStates(ctx context.Context, guid string, stage models.LogStage, invoices []models.Invoice) error
	// SaveResults stores the per-invoice outcomes of an allocation run.
	SaveResults(ctx context.Context, guid string, results []models.AllocationResult) error
}

// ErrorClassificator maps driver errors onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
