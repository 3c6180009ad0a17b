// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var testCreds = Credentials{Database: "testdb", Username: "svc", Password: "secret"}

// zeroDelay keeps the default attempt bound without sleeping.
var zeroDelay = RetryPolicy{MaxAttempts: 3}

type transportCall struct {
	Service string
	Method  string
	Args    []any
}

// fakeTransport answers calls through handle and records them.
type fakeTransport struct {
	mu     sync.Mutex
	calls  []transportCall
	handle func(service, method string, args []any) (any, error)
}

func (f *fakeTransport) Call(_ context.Context, service, method string, args []any, result any) error {
	f.mu.Lock()
	f.calls = append(f.calls, transportCall{Service: service, Method: method, Args: args})
	f.mu.Unlock()

	v, err := f.handle(service, method, args)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, result)
}

func (f *fakeTransport) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// rpcCall is a decoded execute_kw request seen by the fake backend server.
type rpcCall struct {
	Model  string
	Method string
	Args   []any
	Kwargs map[string]any
}

type fakeServer struct {
	*httptest.Server

	mu    sync.Mutex
	calls []rpcCall
}

func (s *fakeServer) recorded() []rpcCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]rpcCall(nil), s.calls...)
}

// newFakeServer serves the JSON-RPC endpoint: authenticate always returns
// uid 7, execute_kw is delegated to handle.
func newFakeServer(t *testing.T, handle func(c rpcCall) (any, *RPCError)) *fakeServer {
	t.Helper()
	fs := &fakeServer{}

	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64 `json:"id"`
			Params struct {
				Service string            `json:"service"`
				Method  string            `json:"method"`
				Args    []json.RawMessage `json:"args"`
			} `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		switch req.Params.Method {
		case "authenticate":
			resp["result"] = 7
		case "execute_kw":
			var c rpcCall
			_ = json.Unmarshal(req.Params.Args[3], &c.Model)
			_ = json.Unmarshal(req.Params.Args[4], &c.Method)
			_ = json.Unmarshal(req.Params.Args[5], &c.Args)
			_ = json.Unmarshal(req.Params.Args[6], &c.Kwargs)

			fs.mu.Lock()
			fs.calls = append(fs.calls, c)
			fs.mu.Unlock()

			result, rpcErr := handle(c)
			if rpcErr != nil {
				resp["error"] = rpcErr
			} else {
				resp["result"] = result
			}
		default:
			http.Error(w, "unknown method", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(fs.Close)

	return fs
}

func newServerBackend(t *testing.T, url string) Backend {
	t.Helper()
	transport, err := NewJSONRPCTransport(config.Backend{URL: url})
	require.NoError(t, err)

	session := NewSession(transport, testCreds, zeroDelay, nil)
	return NewBackend(session, NewInvoker(session, zeroDelay, nil))
}

// recordSpans installs a recording tracer provider for the duration of the
// test. Invokers must be built after the call.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]any {
	attrs := make(map[attribute.Key]any)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value.AsInterface()
	}
	return attrs
}
