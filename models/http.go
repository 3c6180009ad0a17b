// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// CustomerRequest is the body of /check_customer and /total_amount.
type CustomerRequest struct {
	// CustomerID is the lookup key (the partner's mobile number).
	CustomerID string `json:"customer_id"`

	// Source names the calling channel, e.g. "esadad".
	Source string `json:"source"`
}

// PayInvoicesRequest is the body of /pay_invoices.
type PayInvoicesRequest struct {
	CustomerID string `json:"customer_id"`

	// TotalAmount is the amount to allocate. Nil when absent.
	TotalAmount *decimal.Decimal `json:"total_amount"`

	// Date is the payment date, YYYY-MM-DD.
	Date string `json:"date"`

	Source string `json:"source"`

	// GUID is the caller's idempotency key. A key is generated when empty.
	GUID string `json:"guid,omitempty"`
}

// Envelope is the response body shared by all payment endpoints.
type Envelope struct {
	Message       string   `json:"message"`
	Code          string   `json:"code"`
	DateTime      string   `json:"datetime"`
	QueryNumber   string   `json:"queryNumber"`
	QueryTable    string   `json:"queryTable"`
	StatusOfQuery string   `json:"status_of_query"`
	Status        string   `json:"status"`
	QueryStatus   string   `json:"query_status"`
	InvoiceList   any      `json:"invoice_list"`
	TotalAmount   *float64 `json:"total_amount,omitempty"`
}

// InvoiceAmount is one entry of the /total_amount invoice list.
type InvoiceAmount struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
}

// InvoicePayment is one entry of the /pay_invoices invoice list.
type InvoicePayment struct {
	InvoiceID          int64    `json:"invoice_id"`
	InvoiceTotalAmount float64  `json:"invoice_total_amount"`
	AmountPaid         float64  `json:"amount_paid"`
	AmountRemaining    *float64 `json:"amount_remaining"`
	Status             string   `json:"status"`
}

// MessageResponse is a bare message body, used for 503 responses.
type MessageResponse struct {
	Message string `json:"message"`
}
