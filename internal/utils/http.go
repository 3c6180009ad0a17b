// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// MaxRequestBodyBytes bounds request bodies accepted by [DecodeJSON].
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned by [DecodeJSON] for a request without a body.
var ErrEmptyBody = errors.New("empty request body")

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads at most MaxRequestBodyBytes of the request body into dst
// and returns the raw bytes read, which callers keep for auditing.
func DecodeJSON(r *http.Request, dst any) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrEmptyBody
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return raw, ErrEmptyBody
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		return raw, fmt.Errorf("error decoding request body: %w", err)
	}

	return raw, nil
}

// ClientIP returns the first address in X-Forwarded-For, or the host part of
// the connection's remote address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
