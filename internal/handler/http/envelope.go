// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-invoice-gateway/internal/app"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/utils"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

const envelopeDateTimeLayout = "2006-01-02 15:04:05"

// Query tables echoed in the envelope, one per payment endpoint.
const (
	tableCheckCustomer = "check_customer"
	tableTotalAmount   = "total_amount"
	tablePayInvoices   = "pay_invoices"
)

const (
	statusSuccessful = "successful"
	statusFailed     = "failed"
)

// reply is the outcome of one payment endpoint call before it is rendered.
type reply struct {
	status  int
	message string

	// successful sets status_of_query and status.
	successful bool
	// found sets query_status; it can be false on a successful query that
	// matched no data.
	found bool

	invoices    any
	totalAmount *float64
}

func (h *Handler) envelope(r *http.Request, table string, rep reply) models.Envelope {
	queryNumber, _ := utils.GetQueryNumberFromContext(r.Context())

	env := models.Envelope{
		Message:       rep.message,
		Code:          strconv.Itoa(rep.status),
		DateTime:      h.now().Format(envelopeDateTimeLayout),
		QueryNumber:   queryNumber,
		QueryTable:    table,
		StatusOfQuery: strconv.FormatBool(rep.successful),
		Status:        statusFailed,
		QueryStatus:   "0",
		InvoiceList:   rep.invoices,
		TotalAmount:   rep.totalAmount,
	}
	if rep.successful {
		env.Status = statusSuccessful
	}
	if rep.found {
		env.QueryStatus = "1"
	}
	if env.InvoiceList == nil {
		env.InvoiceList = []any{}
	}

	return env
}

func (h *Handler) writeReply(w http.ResponseWriter, r *http.Request, table string, rep reply) {
	if _, err := utils.WriteJSON(w, h.envelope(r, table, rep), rep.status); err != nil {
		logger.FromRequest(r).Err(err).Str("query_table", table).Msg("error writing response")
	}
}

// writeError renders err with the status of the error mapper. Backend
// outages get the bare service-unavailable body; message overrides the
// default "Error: ..." text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, table string, err error, message string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status == http.StatusServiceUnavailable {
		log.Err(err).Str("query_table", table).Msg("backend unavailable")
		if _, werr := utils.WriteJSON(w, models.MessageResponse{Message: app.MsgServiceUnavailable}, status); werr != nil {
			log.Err(werr).Msg("error writing response")
		}
		return
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("query_table", table).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("query_table", table).Int("status", status).Msg("request rejected")
	}

	if message == "" {
		message = app.MsgErrorPrefix + err.Error()
	}

	h.writeReply(w, r, table, reply{status: status, message: message})
}

func amountPtr(f float64) *float64 {
	return &f
}
