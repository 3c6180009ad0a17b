// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/sethvargo/go-retry"
)

// Credentials identify the service account on the backend.
type Credentials struct {
	Database string
	Username string
	Password string
}

// Session holds the backend session token (the numeric user id returned by
// authenticate) and obtains it on demand.
//
// Only a successful authentication writes the token. A failed authentication
// clears it and is remembered, so that later calls on the same session fail
// fast instead of repeating the whole retry loop; an explicit Authenticate
// call tries again.
type Session struct {
	transport Transport
	creds     Credentials
	policy    RetryPolicy
	metrics   *metrics.Metrics

	mu      sync.RWMutex
	uid     int64
	authErr error
}

// NewSession returns an unauthenticated session. No I/O happens until the
// first Authenticate or EnsureToken call.
func NewSession(transport Transport, creds Credentials, policy RetryPolicy, m *metrics.Metrics) *Session {
	return &Session{
		transport: transport,
		creds:     creds,
		policy:    policy,
		metrics:   m,
	}
}

// Authenticate logs in, retrying transport failures up to the policy's
// attempt bound with a fixed pause. A credential rejection stops at once.
//
// On failure the token is cleared and an error matching ErrAuthFailed is
// returned.
func (s *Session) Authenticate(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	attempt := 0
	uid, err := retry.DoValue(ctx, s.policy.backoff(), func(ctx context.Context) (int64, error) {
		attempt++

		var raw json.RawMessage
		args := []any{s.creds.Database, s.creds.Username, s.creds.Password, map[string]any{}}
		if err := s.transport.Call(ctx, serviceCommon, "authenticate", args, &raw); err != nil {
			s.metrics.AuthAttempt(metrics.ResultError)
			log.Warn().Err(err).
				Int("attempt", attempt).
				Int("max_attempts", s.policy.MaxAttempts).
				Msg("backend authentication attempt failed")
			return 0, retry.RetryableError(err)
		}

		uid, ok := decodeUID(raw)
		if !ok {
			s.metrics.AuthAttempt(metrics.ResultRejected)
			log.Error().Str("username", s.creds.Username).Msg("backend rejected credentials")
			return 0, ErrCredentialsRejected
		}

		s.metrics.AuthAttempt(metrics.ResultOK)
		return uid, nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.uid = 0
		authErr := fmt.Errorf("%w: %w", ErrAuthFailed, err)
		if ctx.Err() == nil {
			s.authErr = authErr
		}
		return 0, authErr
	}

	s.uid = uid
	s.authErr = nil
	log.Debug().Int64("uid", uid).Msg("backend session established")
	return uid, nil
}

// Token returns the current token without doing any I/O.
func (s *Session) Token() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.uid == 0 {
		return 0, ErrNotAuthenticated
	}
	return s.uid, nil
}

// EnsureToken returns the current token, authenticating first when there is
// none. If an earlier authentication on this session failed, that failure is
// returned without contacting the backend.
func (s *Session) EnsureToken(ctx context.Context) (int64, error) {
	s.mu.RLock()
	uid, authErr := s.uid, s.authErr
	s.mu.RUnlock()

	if uid != 0 {
		return uid, nil
	}
	if authErr != nil {
		return 0, authErr
	}
	return s.Authenticate(ctx)
}

// Invalidate drops the token so the next call re-authenticates.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.uid = 0
	s.mu.Unlock()
}

// decodeUID accepts a positive integer; the backend answers false on
// rejected credentials.
func decodeUID(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("false")) || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var uid int64
	if err := json.Unmarshal(raw, &uid); err != nil || uid <= 0 {
		return 0, false
	}
	return uid, true
}
