// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/utils"
)

// Backend JSON-RPC services.
const (
	serviceCommon = "common"
	serviceObject = "object"
)

const jsonRPCPath = "/jsonrpc"

// Transport performs a single call against the backend's external API. It
// does not retry and holds no session state.
type Transport interface {
	// Call invokes method on service with positional args and decodes the
	// result into result, which may be nil.
	Call(ctx context.Context, service, method string, args []any, result any) error
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      uint64    `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

type jsonRPCTransport struct {
	client *utils.HTTPClient
	nextID atomic.Uint64
}

// NewJSONRPCTransport builds a [Transport] speaking JSON-RPC 2.0 to
// cfg.URL + "/jsonrpc". TLS verification follows cfg.VerifyTLS.
//
// The returned transport is safe for concurrent use and shares one
// connection pool across all sessions created on top of it.
func NewJSONRPCTransport(cfg config.Backend) (Transport, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:            baseURL,
		Timeout:            cfg.RequestTimeout,
		InsecureSkipVerify: !cfg.VerifyTLS(),
	})

	return &jsonRPCTransport{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Call implements [Transport].
func (t *jsonRPCTransport) Call(ctx context.Context, service, method string, args []any, result any) error {
	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: service, Method: method, Args: args},
		ID:      t.nextID.Add(1),
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(jsonRPCPath)
	if err != nil {
		return fmt.Errorf("%s.%s request: %w", service, method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return fmt.Errorf("%w: %s.%s: decode envelope: %v", ErrUnexpectedResponse, service, method, err)
	}

	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if result == nil {
		return nil
	}
	if len(rpcResp.Result) == 0 {
		return fmt.Errorf("%w: %s.%s: empty result", ErrUnexpectedResponse, service, method)
	}
	if err = json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("%w: %s.%s: %v", ErrUnexpectedResponse, service, method, err)
	}

	return nil
}
