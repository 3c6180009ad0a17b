// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks and normalizes inbound requests before they
// reach the services.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - PaymentOrderValidator: additionally turns a pay request into a
//     models.PaymentOrder.
//
// Validation normalizes pointer arguments in place: identifiers and dates are
// trimmed and the source is lower-cased, so handlers log and forward the
// values that were actually checked.
package validators

import (
	"context"

	"github.com/MKhiriev/go-invoice-gateway/models"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// PaymentOrderValidator validates pay requests and builds the order the
// payment service consumes.
type PaymentOrderValidator interface {
	Validator

	// PaymentOrder validates req and converts it. A missing GUID is
	// generated.
	PaymentOrder(ctx context.Context, req *models.PayInvoicesRequest) (models.PaymentOrder, error)
}
