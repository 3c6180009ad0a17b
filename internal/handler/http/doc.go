// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the gateway.
//
// It exposes the payment endpoints used by billing channels
// (/check_customer, /total_amount, /pay_invoices) together with the
// operational routes (/api/version, /healthz, /metrics). Request tracing,
// access logging, metrics, response compression and the optional caller
// token check are handled here before requests reach the service layer.
//
// Payment endpoints answer with a [models.Envelope]; only a backend outage
// is reported with the bare 503 message body.
package http
