// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent identifies the gateway to upstream services.
const DefaultUserAgent = "go-invoice-gateway"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep the resty
// defaults.
type HTTPClientOptions struct {
	// BaseURL is prepended to relative request URLs.
	BaseURL string
	// Timeout bounds a single round trip.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
	// UserAgent defaults to DefaultUserAgent.
	UserAgent string
}

// NewHTTPClient creates a JSON client. Each call returns an independent
// client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://erp.example.com"})
//	resp, err := client.R().SetBody(payload).Post("/jsonrpc")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client.SetHeader("User-Agent", userAgent)

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in via BACKEND_SSL_VERIFY=false
	}

	return &HTTPClient{Client: client}
}
