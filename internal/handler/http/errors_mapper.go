// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/service"
	"github.com/MKhiriev/go-invoice-gateway/internal/store"
	"github.com/MKhiriev/go-invoice-gateway/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:               http.StatusBadRequest,
	validators.ErrInvalidRequest: http.StatusBadRequest,
	service.ErrAmountMismatch:    http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrSourceMismatch:                  http.StatusForbidden,

	store.ErrDuplicateRequest: http.StatusConflict,

	adapter.ErrAuthFailed:          http.StatusServiceUnavailable,
	adapter.ErrCredentialsRejected: http.StatusServiceUnavailable,
	adapter.ErrRemoteCallFailed:    http.StatusServiceUnavailable,
	adapter.ErrBackendUnavailable:  http.StatusServiceUnavailable,
	adapter.ErrEndpointNotFound:    http.StatusServiceUnavailable,
	adapter.ErrUnexpectedStatus:    http.StatusServiceUnavailable,

	service.ErrJournalNotFound: http.StatusInternalServerError,
	service.ErrAuditFailed:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
