// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/shopspring/decimal"
)

// OutcomeStatus is the coarse result of processing one invoice.
type OutcomeStatus string

const (
	OutcomeCompleted OutcomeStatus = "completed"
	OutcomeSkipped   OutcomeStatus = "skipped"
	OutcomeFailed    OutcomeStatus = "failed"
)

// Reasons attached to skipped and failed outcomes.
const (
	ReasonInsufficientFunds   = "insufficient funds"
	ReasonAlreadySettled      = "already settled"
	ReasonNoSettlementMethod  = "no settlement method available"
	ReasonMalformedInvoice    = "malformed invoice"
	ReasonPaymentRegistration = "payment registration failed"
)

// AllocationResult is the per-invoice outcome of a payment allocation run.
type AllocationResult struct {
	// InvoiceID is the backend identifier of the invoice.
	InvoiceID int64

	// InvoiceTotal is the invoice total at read time.
	InvoiceTotal decimal.Decimal

	// AmountApplied is what was paid against the invoice. Zero unless
	// Status is OutcomeCompleted.
	AmountApplied decimal.Decimal

	// AmountRemaining is the unpaid balance after processing. For completed
	// outcomes it is the value re-read from the backend and is invalid if
	// that read failed.
	AmountRemaining decimal.NullDecimal

	// Status is the outcome class.
	Status OutcomeStatus

	// Reason explains skipped and failed outcomes.
	Reason string

	// PaymentRegisterID is the backend id of the payment wizard, if created.
	PaymentRegisterID int64
}

// Description renders the outcome the way it is reported to callers.
func (r AllocationResult) Description() string {
	switch r.Status {
	case OutcomeCompleted:
		return "Payment Completed"
	case OutcomeSkipped:
		return "Skipped: " + r.Reason
	default:
		return "Payment Registration Failed: " + r.Reason
	}
}

// TotalApplied adds up AmountApplied across results.
func TotalApplied(results []AllocationResult) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range results {
		sum = sum.Add(r.AmountApplied)
	}
	return sum
}
