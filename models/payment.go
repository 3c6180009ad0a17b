// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDateLayout is the wire format of payment dates.
const PaymentDateLayout = "2006-01-02"

// PaymentRequest is the record kept per idempotency key to reject a second
// submission of the same payment attempt.
type PaymentRequest struct {
	ID          int64
	GUID        string
	CustomerID  string
	TotalAmount decimal.Decimal
	Source      string
	CreatedAt   time.Time
}

// PaymentContext is the backend context returned when a payment-registration
// flow is opened for an invoice. It is passed back on every later call of the
// same flow.
type PaymentContext map[string]any

// PaymentDraft carries the values of a draft payment transaction.
type PaymentDraft struct {
	// Amount is the amount to apply.
	Amount decimal.Decimal

	// Date is the payment date.
	Date time.Time

	// Memo is stamped on the transaction (the idempotency tag).
	Memo string

	// JournalID selects the journal; zero lets the backend choose.
	JournalID int64
}

// AllocationInput is everything the allocator needs for one run.
type AllocationInput struct {
	Invoices    []Invoice
	TotalAmount decimal.Decimal
	PaymentDate time.Time
	Tag         string
	JournalID   int64
}

// LogStage marks an invoice snapshot as taken before or after payment.
type LogStage string

const (
	StageBefore LogStage = "before"
	StageAfter  LogStage = "after"
)

// PaymentPolicy decides how a total that does not match the open balance is
// treated.
type PaymentPolicy string

const (
	// PolicyPartial allocates the total greedily, oldest invoice first.
	PolicyPartial PaymentPolicy = "partial"
	// PolicyExact rejects totals that differ from the sum of open residuals.
	PolicyExact PaymentPolicy = "exact"
)

// PaymentOrder is a validated pay request.
type PaymentOrder struct {
	// GUID is the idempotency key of the request.
	GUID        string
	CustomerID  string
	TotalAmount decimal.Decimal
	Date        time.Time
	Source      string
}

// PaymentSummary is what a pay request produced. Unknown and ambiguous
// customers, and customers without open invoices, come back with no Results.
type PaymentSummary struct {
	GUID         string
	Resolution   AccountResolution
	OpenInvoices []Invoice
	Results      []AllocationResult
}

// CustomerBalance is the open balance of a resolved customer.
type CustomerBalance struct {
	Resolution AccountResolution
	Invoices   []Invoice
	Total      decimal.Decimal
}
