// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-invoice-gateway/models"
	"github.com/shopspring/decimal"
)

// Backend models and the fields read from them.
const (
	modelPartner         = "res.partner"
	modelMove            = "account.move"
	modelJournal         = "account.journal"
	modelPaymentRegister = "account.payment.register"
)

var (
	partnerFields = []string{"id", "name"}
	invoiceFields = []string{"id", "partner_id", "amount_total", "amount_residual", "state", "move_type", "invoice_date"}
)

type odooBackend struct {
	session *Session
	invoker *Invoker
}

// NewBackend builds a [Backend] over an invoker and its session.
func NewBackend(session *Session, invoker *Invoker) Backend {
	return &odooBackend{session: session, invoker: invoker}
}

func (b *odooBackend) Ping(ctx context.Context) error {
	_, err := b.session.Authenticate(ctx)
	return err
}

func (b *odooBackend) SearchPartners(ctx context.Context, key string) ([]models.Account, error) {
	var rows []record
	domain := []any{[]any{"mobile", "=", key}}
	err := b.invoker.Invoke(ctx, modelPartner, "search_read",
		[]any{domain},
		map[string]any{"fields": partnerFields},
		&rows)
	if err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toAccount())
	}
	return accounts, nil
}

func (b *odooBackend) OpenInvoices(ctx context.Context, accountID int64) ([]models.Invoice, error) {
	var rows []record
	domain := []any{
		[]any{"partner_id", "=", accountID},
		[]any{"state", "=", models.InvoiceStatePosted},
		[]any{"move_type", "=", models.MoveTypeOutInvoice},
		[]any{"amount_residual", ">", 0},
	}
	err := b.invoker.Invoke(ctx, modelMove, "search_read",
		[]any{domain},
		map[string]any{"fields": invoiceFields, "order": "invoice_date asc, id asc"},
		&rows)
	if err != nil {
		return nil, err
	}

	return toInvoices(rows), nil
}

func (b *odooBackend) ReadInvoices(ctx context.Context, ids []int64) ([]models.Invoice, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []record
	err := b.invoker.Invoke(ctx, modelMove, "read",
		[]any{ids},
		map[string]any{"fields": invoiceFields},
		&rows)
	if err != nil {
		return nil, err
	}

	return toInvoices(rows), nil
}

func (b *odooBackend) FindJournal(ctx context.Context, name string) (int64, error) {
	var rows []record
	domain := []any{[]any{"name", "=", name}}
	err := b.invoker.Invoke(ctx, modelJournal, "search_read",
		[]any{domain},
		map[string]any{"fields": []string{"id", "name"}, "limit": 1},
		&rows)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, fmt.Errorf("journal %q: %w", name, ErrRecordNotFound)
	}
	id, ok := rows[0].intField("id")
	if !ok {
		return 0, fmt.Errorf("%w: journal %q without id", ErrUnexpectedResponse, name)
	}
	return id, nil
}

func (b *odooBackend) OpenPaymentContext(ctx context.Context, invoiceID int64) (models.PaymentContext, error) {
	var action struct {
		Context map[string]any `json:"context"`
	}
	err := b.invoker.Invoke(ctx, modelMove, "action_register_payment",
		[]any{[]int64{invoiceID}},
		nil,
		&action)
	if err != nil {
		return nil, err
	}

	pctx := make(models.PaymentContext, len(action.Context)+3)
	maps.Copy(pctx, action.Context)
	pctx["active_ids"] = []int64{invoiceID}
	pctx["active_model"] = modelMove
	pctx["active_id"] = invoiceID

	return pctx, nil
}

func (b *odooBackend) CreateDraftPayment(ctx context.Context, pctx models.PaymentContext, draft models.PaymentDraft) (int64, error) {
	values := map[string]any{
		"amount":       json.Number(draft.Amount.String()),
		"payment_date": draft.Date.Format(models.PaymentDateLayout),
	}
	if draft.Memo != "" {
		values["communication"] = draft.Memo
	}
	if draft.JournalID != 0 {
		values["journal_id"] = draft.JournalID
	}

	var id int64
	err := b.invoker.Invoke(ctx, modelPaymentRegister, "create",
		[]any{values},
		map[string]any{"context": pctx},
		&id)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: payment register id %d", ErrUnexpectedResponse, id)
	}

	return id, nil
}

func (b *odooBackend) ReadMethodLines(ctx context.Context, pctx models.PaymentContext, registerID int64) ([]int64, error) {
	var rows []record
	err := b.invoker.Invoke(ctx, modelPaymentRegister, "read",
		[]any{[]int64{registerID}},
		map[string]any{"fields": []string{"available_payment_method_line_ids"}, "context": pctx},
		&rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("payment register %d: %w", registerID, ErrRecordNotFound)
	}

	return rows[0].ids("available_payment_method_line_ids"), nil
}

func (b *odooBackend) ConfirmPayment(ctx context.Context, pctx models.PaymentContext, registerID, methodLineID int64, amount decimal.Decimal) error {
	kwargs := map[string]any{"context": pctx}

	values := map[string]any{
		"payment_method_line_id": methodLineID,
		"amount":                 json.Number(amount.String()),
	}
	var written bool
	err := b.invoker.Invoke(ctx, modelPaymentRegister, "write",
		[]any{[]int64{registerID}, values},
		kwargs,
		&written)
	if err != nil {
		return err
	}

	var action json.RawMessage
	return b.invoker.Invoke(ctx, modelPaymentRegister, "action_create_payments",
		[]any{[]int64{registerID}},
		kwargs,
		&action)
}

func toInvoices(rows []record) []models.Invoice {
	invoices := make([]models.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, row.toInvoice())
	}
	return invoices
}
