// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MKhiriev/go-invoice-gateway/internal/adapter"

// Invoker executes model methods on the backend. It is the only path from
// the gateway to backend data: every call authenticates on demand and is
// retried with a fresh token on failure.
type Invoker struct {
	session   *Session
	transport Transport
	policy    RetryPolicy
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// NewInvoker binds an invoker to a session. The session and the invoker
// must share the same transport.
func NewInvoker(session *Session, policy RetryPolicy, m *metrics.Metrics) *Invoker {
	return &Invoker{
		session:   session,
		transport: session.transport,
		policy:    policy,
		metrics:   m,
		tracer:    otel.Tracer(tracerName),
	}
}

// Invoke runs model.method(args, kwargs) and decodes the result into result.
//
// Any call failure invalidates the session token; the call is repeated until
// the policy's attempt bound is reached, after which a *RemoteCallError is
// returned. An authentication failure is returned unchanged and ends the
// loop.
func (i *Invoker) Invoke(ctx context.Context, model, method string, args []any, kwargs map[string]any, result any) error {
	ctx, span := i.tracer.Start(ctx, "adapter.Invoke", trace.WithAttributes(
		attribute.String("rpc.model", model),
		attribute.String("rpc.method", method),
	))
	defer span.End()

	log := logger.FromContext(ctx)
	if kwargs == nil {
		kwargs = map[string]any{}
	}

	attempts := 0
	err := retry.Do(ctx, i.policy.backoff(), func(ctx context.Context) error {
		attempts++
		if attempts > 1 {
			i.metrics.RemoteRetry(model, method)
		}

		uid, err := i.session.EnsureToken(ctx)
		if err != nil {
			return err
		}

		creds := i.session.creds
		callArgs := []any{creds.Database, uid, creds.Password, model, method, args, kwargs}
		if err = i.transport.Call(ctx, serviceObject, "execute_kw", callArgs, result); err != nil {
			i.session.Invalidate()
			log.Warn().Err(err).
				Str("model", model).
				Str("method", method).
				Int("attempt", attempts).
				Int("max_attempts", i.policy.MaxAttempts).
				Msg("remote call attempt failed")
			return retry.RetryableError(err)
		}

		return nil
	})

	span.SetAttributes(attribute.Int("rpc.attempts", attempts))

	if err == nil {
		i.metrics.RemoteCall(model, method, metrics.ResultOK)
		return nil
	}

	i.metrics.RemoteCall(model, method, metrics.ResultError)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if errors.Is(err, ErrAuthFailed) {
		return err
	}

	log.Error().Err(err).
		Str("model", model).
		Str("method", method).
		Int("attempts", attempts).
		Msg("remote call failed")
	return &RemoteCallError{Model: model, Method: method, Attempts: attempts, Err: err}
}
