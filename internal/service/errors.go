// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrAmountMismatch is returned under the exact payment policy when the
	// requested total differs from the open balance.
	ErrAmountMismatch = errors.New("total amount does not match open balance")

	// ErrJournalNotFound is returned when the configured payment journal does
	// not exist in the backend.
	ErrJournalNotFound = errors.New("payment journal not found")

	// ErrAuditFailed is returned when the pre-payment invoice snapshot could
	// not be stored; no payment is attempted.
	ErrAuditFailed = errors.New("audit snapshot failed")

	ErrInvalidPaymentPolicy = errors.New("invalid payment policy")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenAuthDisabled       = errors.New("token authentication is disabled")
)
