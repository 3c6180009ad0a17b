// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-invoice-gateway/internal/app"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/utils"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

func (h *Handler) checkCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, ok := h.decodeCustomerRequest(w, r, "/check_customer", tableCheckCustomer)
	if !ok {
		return
	}

	resolution, err := h.services.CustomerService.CheckCustomer(ctx, req.CustomerID)
	if err != nil {
		h.writeError(w, r, tableCheckCustomer, err, "")
		return
	}

	if rep, unresolved := unresolvedReply(req.CustomerID, resolution); unresolved {
		log.Warn().Str("customer_id", req.CustomerID).Msg(rep.message)
		h.writeReply(w, r, tableCheckCustomer, rep)
		return
	}

	account, _ := resolution.Account()
	h.writeReply(w, r, tableCheckCustomer, reply{
		status:     http.StatusOK,
		message:    fmt.Sprintf(app.MsgCustomerFound, req.CustomerID, account.Name),
		successful: true,
		found:      true,
	})
}

func (h *Handler) totalAmount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeCustomerRequest(w, r, "/total_amount", tableTotalAmount)
	if !ok {
		return
	}

	balance, err := h.services.CustomerService.TotalAmount(ctx, req.CustomerID)
	if err != nil {
		h.writeError(w, r, tableTotalAmount, err, "")
		return
	}

	if rep, unresolved := unresolvedReply(req.CustomerID, balance.Resolution); unresolved {
		h.writeReply(w, r, tableTotalAmount, rep)
		return
	}

	if len(balance.Invoices) == 0 {
		h.writeReply(w, r, tableTotalAmount, reply{
			status:      http.StatusOK,
			message:     fmt.Sprintf(app.MsgNoUnpaidInvoices, req.CustomerID),
			successful:  true,
			totalAmount: amountPtr(0),
		})
		return
	}

	list := make([]models.InvoiceAmount, 0, len(balance.Invoices))
	for _, inv := range balance.Invoices {
		list = append(list, models.InvoiceAmount{ID: inv.ID, Amount: inv.Residual().InexactFloat64()})
	}

	h.writeReply(w, r, tableTotalAmount, reply{
		status:      http.StatusOK,
		message:     fmt.Sprintf(app.MsgTotalUnpaidAmount, req.CustomerID, balance.Total.String()),
		successful:  true,
		found:       true,
		invoices:    list,
		totalAmount: amountPtr(balance.Total.InexactFloat64()),
	})
}

// decodeCustomerRequest decodes, audits, validates and authorizes a
// customer request. It writes the error response itself and reports false
// when the request must not go on.
func (h *Handler) decodeCustomerRequest(w http.ResponseWriter, r *http.Request, endpoint, table string) (models.CustomerRequest, bool) {
	var req models.CustomerRequest

	raw, err := utils.DecodeJSON(r, &req)
	if err != nil {
		h.writeError(w, r, table, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgErrorPrefix+app.MsgInvalidJSON)
		return req, false
	}

	err = h.validator.Validate(r.Context(), &req)
	h.audit(r, endpoint, req.Source, raw)
	if err != nil {
		h.writeError(w, r, table, err, "")
		return req, false
	}

	if err = authorizeSource(r.Context(), req.Source); err != nil {
		h.writeError(w, r, table, err, app.MsgAccessDenied)
		return req, false
	}

	return req, true
}

// unresolvedReply renders unknown and ambiguous customers. The second value
// is false when exactly one customer matched.
func unresolvedReply(customerID string, resolution models.AccountResolution) (reply, bool) {
	switch resolution.Outcome {
	case models.AccountFound:
		return reply{}, false
	case models.AccountAmbiguous:
		return reply{
			status:  http.StatusBadRequest,
			message: fmt.Sprintf(app.MsgMultipleCustomers, customerID, resolution.Names()),
		}, true
	default:
		return reply{
			status:  http.StatusRequestTimeout,
			message: app.MsgInvalidBillingNumber,
		}, true
	}
}

// authorizeSource rejects a body source that differs from the caller token
// subject. Without a token every allowed source is accepted.
func authorizeSource(ctx context.Context, source string) error {
	tokenSource, ok := utils.GetSourceFromContext(ctx)
	if !ok || strings.EqualFold(tokenSource, source) {
		return nil
	}
	return fmt.Errorf("%w: token issued to %q, body names %q", ErrSourceMismatch, tokenSource, source)
}
