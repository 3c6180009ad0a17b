// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the gateway:
// typed context keys, JSON response writing, the shared HTTP client, caller
// JWT handling and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SourceCtxKey holds the calling source authenticated by a caller token.
var SourceCtxKey = contextKey("source")

// QueryNumberCtxKey holds the query number echoed in response envelopes.
var QueryNumberCtxKey = contextKey("queryNumber")

// GetSourceFromContext returns the authenticated source, if any.
func GetSourceFromContext(ctx context.Context) (string, bool) {
	source, ok := ctx.Value(SourceCtxKey).(string)
	return source, ok && source != ""
}

// WithQueryNumber stores the query number of the current request.
func WithQueryNumber(ctx context.Context, queryNumber string) context.Context {
	return context.WithValue(ctx, QueryNumberCtxKey, queryNumber)
}

// GetQueryNumberFromContext returns the query number of the current request.
func GetQueryNumberFromContext(ctx context.Context) (string, bool) {
	queryNumber, ok := ctx.Value(QueryNumberCtxKey).(string)
	return queryNumber, ok && queryNumber != ""
}
