// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-invoice-gateway/models"
)

const (
	tablePaymentRequests = "payment_requests"
	tableInvoiceStateLog = "invoice_state_log"
	tableInvoiceResults  = "payment_invoice_result"
)

func buildRegisterRequestQuery(b sq.StatementBuilderType, request models.PaymentRequest) (string, []any, error) {
	return b.Insert(tablePaymentRequests).
		Columns("request_guid", "customer_id", "total_amount", "source").
		Values(request.GUID, request.CustomerID, request.TotalAmount, request.Source).
		ToSql()
}

func buildRequestExistsQuery(b sq.StatementBuilderType, guid string) (string, []any, error) {
	return b.Select("1").
		From(tablePaymentRequests).
		Where(sq.Eq{"request_guid": guid}).
		Limit(1).
		ToSql()
}

// buildInvoiceStatesInsert returns one multi-row insert for all snapshots.
// Missing amounts are stored as NULL.
func buildInvoiceStatesInsert(b sq.StatementBuilderType, guid string, stage models.LogStage, invoices []models.Invoice) sq.InsertBuilder {
	insert := b.Insert(tableInvoiceStateLog).
		Columns("request_guid", "log_stage", "invoice_id", "amount_total", "amount_residual", "state")

	for _, inv := range invoices {
		insert = insert.Values(guid, string(stage), inv.ID, inv.AmountTotal, inv.AmountResidual, inv.State)
	}

	return insert
}

func buildInvoiceResultsInsert(b sq.StatementBuilderType, guid string, results []models.AllocationResult) sq.InsertBuilder {
	insert := b.Insert(tableInvoiceResults).
		Columns("request_guid", "invoice_id", "invoice_total", "amount_applied",
			"amount_remaining", "status", "reason", "payment_register_id")

	for _, r := range results {
		var registerID *int64
		if r.PaymentRegisterID != 0 {
			registerID = &r.PaymentRegisterID
		}
		insert = insert.Values(guid, r.InvoiceID, r.InvoiceTotal, r.AmountApplied,
			r.AmountRemaining, string(r.Status), r.Reason, registerID)
	}

	return insert
}
