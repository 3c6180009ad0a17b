// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-invoice-gateway/internal/app"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/store"
	"github.com/MKhiriev/go-invoice-gateway/internal/utils"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

func (h *Handler) payInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PayInvoicesRequest
	raw, err := utils.DecodeJSON(r, &req)
	if err != nil {
		h.writeError(w, r, tablePayInvoices, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgErrorPrefix+app.MsgInvalidJSON)
		return
	}

	order, err := h.validator.PaymentOrder(ctx, &req)
	h.audit(r, "/pay_invoices", req.Source, raw)
	if err != nil {
		h.writeError(w, r, tablePayInvoices, err, "")
		return
	}

	if err = authorizeSource(ctx, order.Source); err != nil {
		h.writeError(w, r, tablePayInvoices, err, app.MsgAccessDenied)
		return
	}

	log.Info().
		Str("guid", order.GUID).
		Str("customer_id", order.CustomerID).
		Str("total_amount", order.TotalAmount.String()).
		Msg("pay request accepted")

	summary, err := h.services.PaymentService.PayInvoices(ctx, order)
	if err != nil {
		message := ""
		if errors.Is(err, store.ErrDuplicateRequest) {
			message = fmt.Sprintf(app.MsgDuplicateRequest, order.GUID)
		}
		h.writeError(w, r, tablePayInvoices, err, message)
		return
	}

	if rep, unresolved := unresolvedReply(order.CustomerID, summary.Resolution); unresolved {
		h.writeReply(w, r, tablePayInvoices, rep)
		return
	}

	if len(summary.OpenInvoices) == 0 {
		h.writeReply(w, r, tablePayInvoices, reply{
			status:      http.StatusSeeOther,
			message:     fmt.Sprintf(app.MsgNoUnpaidInvoices, order.CustomerID),
			totalAmount: amountPtr(0),
		})
		return
	}

	list := make([]models.InvoicePayment, 0, len(summary.Results))
	details := make([]string, 0, len(summary.Results))
	for _, res := range summary.Results {
		list = append(list, invoicePayment(res))
		details = append(details, fmt.Sprintf(app.MsgPaymentDetail, res.InvoiceID, res.Description()))
	}

	h.writeReply(w, r, tablePayInvoices, reply{
		status:     http.StatusOK,
		message:    fmt.Sprintf(app.MsgPaymentCompleted, strings.Join(details, "; ")),
		successful: true,
		found:      true,
		invoices:   list,
	})
}

// invoicePayment renders one allocation outcome. An unknown remaining
// balance is rendered as null.
func invoicePayment(res models.AllocationResult) models.InvoicePayment {
	p := models.InvoicePayment{
		InvoiceID:          res.InvoiceID,
		InvoiceTotalAmount: res.InvoiceTotal.InexactFloat64(),
		AmountPaid:         res.AmountApplied.InexactFloat64(),
		Status:             res.Description(),
	}
	if res.AmountRemaining.Valid {
		p.AmountRemaining = amountPtr(res.AmountRemaining.Decimal.InexactFloat64())
	}
	return p
}
