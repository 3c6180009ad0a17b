// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle states as reported by the backend (account.move.state).
const (
	InvoiceStateDraft     = "draft"
	InvoiceStatePosted    = "posted"
	InvoiceStateCancelled = "cancel"
)

// MoveTypeOutInvoice is the backend move type of a customer invoice.
const MoveTypeOutInvoice = "out_invoice"

// Invoice is a snapshot of a customer invoice (account.move) fetched fresh
// for every operation.
//
// AmountTotal and AmountResidual are nullable so that records the backend
// returned without those fields can be told apart from zero amounts.
type Invoice struct {
	// ID is the backend identifier. Zero means the field was missing.
	ID int64 `json:"id"`

	// AccountID is the owning partner, when the backend returned it.
	AccountID int64 `json:"partner_id,omitempty"`

	// AmountTotal is the invoice total.
	AmountTotal decimal.NullDecimal `json:"amount_total"`

	// AmountResidual is the unpaid balance.
	AmountResidual decimal.NullDecimal `json:"amount_residual"`

	// State is the lifecycle state (draft, posted, cancel).
	State string `json:"state"`

	// MoveType is the backend move type, "out_invoice" for customer invoices.
	MoveType string `json:"move_type,omitempty"`

	// Date is the issue date. The zero value means the backend had none.
	Date time.Time `json:"invoice_date"`
}

// Malformed reports whether the record lacks a field required to pay it.
func (i Invoice) Malformed() bool {
	return i.ID == 0 || !i.AmountTotal.Valid || !i.AmountResidual.Valid
}

// Residual returns the unpaid balance, zero when unknown.
func (i Invoice) Residual() decimal.Decimal {
	if !i.AmountResidual.Valid {
		return decimal.Zero
	}
	return i.AmountResidual.Decimal
}

// Total returns the invoice total, zero when unknown.
func (i Invoice) Total() decimal.Decimal {
	if !i.AmountTotal.Valid {
		return decimal.Zero
	}
	return i.AmountTotal.Decimal
}

// InvoiceIDs returns the identifiers of invoices in their current order.
func InvoiceIDs(invoices []Invoice) []int64 {
	ids := make([]int64, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}
	return ids
}

// SumResidual adds up the unpaid balances of invoices.
func SumResidual(invoices []Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		sum = sum.Add(inv.Residual())
	}
	return sum
}
