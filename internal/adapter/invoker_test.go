// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func newTestInvoker(tr *fakeTransport) (*Invoker, *Session) {
	s := NewSession(tr, testCreds, zeroDelay, nil)
	return NewInvoker(s, zeroDelay, nil), s
}

func TestInvoke_AuthenticatesOnDemand(t *testing.T) {
	tr := &fakeTransport{handle: func(service, method string, args []any) (any, error) {
		if method == "authenticate" {
			return 7, nil
		}
		assert.Equal(t, serviceObject, service)
		assert.Equal(t, "execute_kw", method)
		assert.Equal(t, []any{
			"testdb", int64(7), "secret",
			"res.partner", "search_read",
			[]any{"x"}, map[string]any{"limit": 1},
		}, args)
		return []map[string]any{{"id": 1}}, nil
	}}
	inv, _ := newTestInvoker(tr)

	var rows []record
	err := inv.Invoke(context.Background(), "res.partner", "search_read", []any{"x"}, map[string]any{"limit": 1}, &rows)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, tr.count("authenticate"))
	assert.Equal(t, 1, tr.count("execute_kw"))
}

func TestInvoke_NilKwargsSentAsEmptyObject(t *testing.T) {
	tr := &fakeTransport{handle: func(_, method string, args []any) (any, error) {
		if method == "execute_kw" {
			assert.Equal(t, map[string]any{}, args[6])
		}
		return 7, nil
	}}
	inv, _ := newTestInvoker(tr)

	require.NoError(t, inv.Invoke(context.Background(), "account.move", "action_register_payment", []any{[]int64{1}}, nil, nil))
}

func TestInvoke_ReauthenticatesBetweenAttempts(t *testing.T) {
	executeFailures := 2
	tr := &fakeTransport{handle: func(_, method string, _ []any) (any, error) {
		if method == "authenticate" {
			return 7, nil
		}
		if executeFailures > 0 {
			executeFailures--
			return nil, errConnRefused
		}
		return 42, nil
	}}
	inv, s := newTestInvoker(tr)

	var id int64
	err := inv.Invoke(context.Background(), "account.payment.register", "create", nil, nil, &id)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, 3, tr.count("execute_kw"))
	assert.Equal(t, 3, tr.count("authenticate"))

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, int64(7), token)
}

func TestInvoke_FailsAfterMaxAttempts(t *testing.T) {
	tr := &fakeTransport{handle: func(_, method string, _ []any) (any, error) {
		if method == "authenticate" {
			return 7, nil
		}
		return nil, errConnRefused
	}}
	inv, s := newTestInvoker(tr)

	err := inv.Invoke(context.Background(), "account.move", "read", []any{[]int64{1}}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteCallFailed)
	assert.ErrorIs(t, err, errConnRefused)

	var rcErr *RemoteCallError
	require.True(t, errors.As(err, &rcErr))
	assert.Equal(t, "account.move", rcErr.Model)
	assert.Equal(t, "read", rcErr.Method)
	assert.Equal(t, 3, rcErr.Attempts)

	assert.Equal(t, 3, tr.count("execute_kw"))
	assert.Equal(t, 3, tr.count("authenticate"))

	_, err = s.Token()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestInvoke_AuthFailureSurfacedUnchanged(t *testing.T) {
	tr := &fakeTransport{handle: func(_, method string, _ []any) (any, error) {
		return false, nil
	}}
	inv, _ := newTestInvoker(tr)

	err := inv.Invoke(context.Background(), "res.partner", "search_read", nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.NotErrorIs(t, err, ErrRemoteCallFailed)
	assert.Equal(t, 0, tr.count("execute_kw"))
}

func TestInvoke_AuthFailureDuringRetry(t *testing.T) {
	authOK := true
	tr := &fakeTransport{handle: func(_, method string, _ []any) (any, error) {
		if method == "authenticate" {
			if authOK {
				return 7, nil
			}
			return nil, errConnRefused
		}
		authOK = false
		return nil, errors.New("session expired")
	}}
	inv, _ := newTestInvoker(tr)

	err := inv.Invoke(context.Background(), "account.move", "read", nil, nil, nil)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, 1, tr.count("execute_kw"))
	assert.Equal(t, 4, tr.count("authenticate"))
}

func TestInvoke_SingleAttemptPolicy(t *testing.T) {
	tr := &fakeTransport{handle: func(_, method string, _ []any) (any, error) {
		if method == "authenticate" {
			return 7, nil
		}
		return nil, errConnRefused
	}}
	s := NewSession(tr, testCreds, RetryPolicy{MaxAttempts: 1}, nil)
	inv := NewInvoker(s, RetryPolicy{MaxAttempts: 1}, nil)

	err := inv.Invoke(context.Background(), "account.move", "read", nil, nil, nil)
	var rcErr *RemoteCallError
	require.True(t, errors.As(err, &rcErr))
	assert.Equal(t, 1, rcErr.Attempts)
}

func TestInvoke_CanceledContext(t *testing.T) {
	tr := &fakeTransport{handle: func(string, string, []any) (any, error) { return 7, nil }}
	inv, _ := newTestInvoker(tr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := inv.Invoke(ctx, "account.move", "read", nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, tr.count("execute_kw"))
}

func TestInvoke_AuthFailureFailsLaterCallsOnSameSession(t *testing.T) {
	backendDown := true
	tr := &fakeTransport{handle: func(_, method string, _ []any) (any, error) {
		if backendDown {
			return nil, errConnRefused
		}
		return 7, nil
	}}
	inv, _ := newTestInvoker(tr)

	err := inv.Invoke(context.Background(), "account.move", "read", nil, nil, nil)
	require.ErrorIs(t, err, ErrAuthFailed)
	require.Equal(t, 3, tr.count("authenticate"))

	backendDown = false
	for range 2 {
		err = inv.Invoke(context.Background(), "account.move", "read", nil, nil, nil)
		assert.ErrorIs(t, err, ErrAuthFailed)
	}
	assert.Equal(t, 3, tr.count("authenticate"), "no further login on a failed session")
	assert.Equal(t, 0, tr.count("execute_kw"))
}

func TestBackendFactory_NewBackendStartsFreshSession(t *testing.T) {
	backendDown := true
	tr := &fakeTransport{handle: func(_, method string, _ []any) (any, error) {
		if backendDown {
			return nil, errConnRefused
		}
		if method == "authenticate" {
			return 7, nil
		}
		return []map[string]any{}, nil
	}}
	factory := NewBackendFactory(tr, testCreds, zeroDelay, nil)

	first := factory.NewBackend()
	_, err := first.SearchPartners(context.Background(), "0791234567")
	require.ErrorIs(t, err, ErrAuthFailed)

	backendDown = false
	_, err = first.SearchPartners(context.Background(), "0791234567")
	assert.ErrorIs(t, err, ErrAuthFailed)

	_, err = factory.NewBackend().SearchPartners(context.Background(), "0791234567")
	assert.NoError(t, err)
	assert.Equal(t, 4, tr.count("authenticate"))
	assert.Equal(t, 1, tr.count("execute_kw"))
}

func TestInvoke_RecordsSpan(t *testing.T) {
	sr := recordSpans(t)
	tr := &fakeTransport{handle: func(string, string, []any) (any, error) { return 7, nil }}
	inv, _ := newTestInvoker(tr)

	require.NoError(t, inv.Invoke(context.Background(), "res.partner", "search_read", nil, nil, nil))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "adapter.Invoke", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, map[attribute.Key]any{
		"rpc.model":    "res.partner",
		"rpc.method":   "search_read",
		"rpc.attempts": int64(1),
	}, spanAttrs(spans[0]))
}

func TestInvoke_FailedCallMarksSpan(t *testing.T) {
	sr := recordSpans(t)
	tr := &fakeTransport{handle: func(_, method string, _ []any) (any, error) {
		if method == "authenticate" {
			return 7, nil
		}
		return nil, errors.New("boom")
	}}
	inv, _ := newTestInvoker(tr)

	require.Error(t, inv.Invoke(context.Background(), "account.move", "read", nil, nil, nil))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, int64(3), spanAttrs(spans[0])["rpc.attempts"])
	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
