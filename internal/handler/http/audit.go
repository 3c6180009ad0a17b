// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-invoice-gateway/internal/utils"
)

// audit writes one record of an inbound payment call to the audit logger.
// The raw body is embedded as JSON when it is valid JSON, and as a string
// otherwise.
func (h *Handler) audit(r *http.Request, endpoint, source string, body []byte) {
	event := h.auditLogger.Info().
		Str("datetime", h.now().Format(envelopeDateTimeLayout)).
		Str("endpoint", endpoint).
		Str("source", source).
		Str("client_ip", utils.ClientIP(r)).
		Str("user_agent", r.UserAgent())

	if queryNumber, ok := utils.GetQueryNumberFromContext(r.Context()); ok {
		event = event.Str("query_number", queryNumber)
	}

	if json.Valid(body) {
		event = event.RawJSON("request_data", body)
	} else {
		event = event.Bytes("request_data", body)
	}

	event.Msg("request audit")
}
