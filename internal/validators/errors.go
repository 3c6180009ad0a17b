// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidRequest is matched by every field error below, so the
	// transport layer can map the whole family to one status.
	ErrInvalidRequest = errors.New("invalid request")

	ErrCustomerIDRequired  = fieldError("Customer ID is required.")
	ErrSourceRequired      = fieldError("Source is required.")
	ErrInvalidSource       = fieldError("Invalid source.")
	ErrTotalAmountRequired = fieldError("Total amount is required.")
	ErrDateRequired        = fieldError("Date is required.")
	ErrInvalidDate         = fieldError("Invalid date, expected YYYY-MM-DD.")
	ErrInvalidGUID         = fieldError("Invalid guid.")
)

// validationError is a user-facing field error. Its message is returned to
// the caller as is.
type validationError struct {
	msg string
}

func fieldError(msg string) error {
	return &validationError{msg: msg}
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Is(target error) bool {
	return target == ErrInvalidRequest
}
