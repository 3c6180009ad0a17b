// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings written into gateway response
// bodies. Keeping them in one place ensures consistent wording across
// endpoints, since callers match on some of them.
package app

const (
	// MsgServiceUnavailable is the whole body of a 503 response, returned
	// when the accounting backend cannot be reached.
	MsgServiceUnavailable = "Service temporarily unavailable. Please try again later."

	// MsgInvalidBillingNumber is returned when no customer matches the
	// lookup key.
	MsgInvalidBillingNumber = "Invalid Billing Number"

	// MsgMultipleCustomers is formatted with the customer id and the
	// matched names.
	MsgMultipleCustomers = "Multiple customers found for customer id %s: %s."

	// MsgCustomerFound is formatted with the customer id and name.
	MsgCustomerFound = "Customer found for customer id %s: %s."

	// MsgNoUnpaidInvoices is formatted with the customer id.
	MsgNoUnpaidInvoices = "No unpaid invoices found for customer id %s."

	// MsgTotalUnpaidAmount is formatted with the customer id and the total.
	MsgTotalUnpaidAmount = "Total unpaid amount for customer id %s is %s."

	// MsgPaymentCompleted is formatted with the per-invoice details.
	MsgPaymentCompleted = "Payment process completed. Details: %s."

	// MsgPaymentDetail is one "Invoice ID X: status" entry of
	// MsgPaymentCompleted.
	MsgPaymentDetail = "Invoice ID %d: %s"

	// MsgDuplicateRequest is returned when the request guid was already
	// processed.
	MsgDuplicateRequest = "Duplicate request: guid %s has already been processed."

	// MsgInvalidJSON is returned when the body is empty or not JSON.
	MsgInvalidJSON = "Invalid JSON data."

	// MsgErrorPrefix prefixes every validation and internal error message.
	MsgErrorPrefix = "Error: "

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the token subject does not match
	// the source in the body.
	MsgAccessDenied = "access denied"

	MsgInternalServerError = "internal server error"
)
