// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
)

type backendFactory struct {
	transport Transport
	creds     Credentials
	policy    RetryPolicy
	metrics   *metrics.Metrics
}

// NewBackendFactory returns a factory whose backends share transport but
// never a session.
func NewBackendFactory(transport Transport, creds Credentials, policy RetryPolicy, m *metrics.Metrics) BackendFactory {
	return &backendFactory{
		transport: transport,
		creds:     creds,
		policy:    policy,
		metrics:   m,
	}
}

// NewBackendFactoryFromConfig wires a JSON-RPC transport from cfg.
func NewBackendFactoryFromConfig(cfg config.Backend, m *metrics.Metrics) (BackendFactory, error) {
	transport, err := NewJSONRPCTransport(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating backend transport: %w", err)
	}

	creds := Credentials{
		Database: cfg.Database,
		Username: cfg.Username,
		Password: cfg.Password,
	}
	policy := RetryPolicy{MaxAttempts: cfg.MaxAttempts, Delay: cfg.RetryDelay}

	return NewBackendFactory(transport, creds, policy, m), nil
}

// NewBackend implements [BackendFactory].
func (f *backendFactory) NewBackend() Backend {
	session := NewSession(f.transport, f.creds, f.policy, f.metrics)
	return NewBackend(session, NewInvoker(session, f.policy, f.metrics))
}
