// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/service"
	"github.com/MKhiriev/go-invoice-gateway/internal/utils"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

func tokenFor(source string) models.Token {
	return models.Token{RegisteredClaims: jwt.RegisteredClaims{Subject: source}}
}

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_MissingHeader(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(http.MethodPost, "/check_customer", `{"customer_id":"1","source":"demo"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuth_MalformedHeader(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(http.MethodPost, "/check_customer", `{"customer_id":"1","source":"demo"}`, "Authorization", "Token abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidAuthorizationHeader.Error())
}

func TestAuth_InvalidToken(t *testing.T) {
	f := newFixture(t, true)
	f.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec := f.do(http.MethodPost, "/check_customer", `{"customer_id":"1","source":"demo"}`, "Authorization", "Bearer abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token is expired or invalid")
}

func TestAuth_TokenWithoutSubject(t *testing.T) {
	f := newFixture(t, true)
	f.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(tokenFor(""), nil)

	rec := f.do(http.MethodPost, "/check_customer", `{"customer_id":"1","source":"demo"}`, "Authorization", "Bearer abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_SourceMismatch(t *testing.T) {
	f := newFixture(t, true)
	f.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(tokenFor("esadad"), nil)

	rec := f.do(http.MethodPost, "/check_customer", `{"customer_id":"1","source":"demo"}`, "Authorization", "Bearer abc")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "access denied", decodeEnvelope(t, rec).Message)
}

func TestAuth_SourceMatches(t *testing.T) {
	f := newFixture(t, true)
	f.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(tokenFor("ESADAD"), nil)
	f.payments.EXPECT().PayInvoices(gomock.Any(), gomock.Any()).Return(models.PaymentSummary{Resolution: found("Jane Doe")}, nil)

	rec := f.do(http.MethodPost, "/pay_invoices",
		`{"customer_id":"1","total_amount":5,"date":"2024-02-28","source":"esadad"}`,
		"Authorization", "bearer abc")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestAuth_OperationalRoutesAreOpen(t *testing.T) {
	f := newFixture(t, true)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rec := f.do(http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorizeSource(t *testing.T) {
	ctx := t.Context()
	assert.NoError(t, authorizeSource(ctx, "demo"), "no token accepts any source")

	ctx = context.WithValue(ctx, utils.SourceCtxKey, "demo")
	assert.NoError(t, authorizeSource(ctx, "DEMO"))
	assert.ErrorIs(t, authorizeSource(ctx, "esadad"), ErrSourceMismatch)
}

// ─────────────────────────────────────────────
// audit
// ─────────────────────────────────────────────

func TestAudit_RecordsRequest(t *testing.T) {
	f := newFixture(t, false)
	f.customers.EXPECT().CheckCustomer(gomock.Any(), "1").Return(found("Jane Doe"), nil)

	rec := f.do(http.MethodPost, "/check_customer", `{"customer_id":"1","source":"demo"}`,
		"X-Forwarded-For", "203.0.113.7, 10.0.0.1",
		"User-Agent", "billing-channel/2.1")
	require.Equal(t, http.StatusOK, rec.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(f.audit.Bytes(), &record), f.audit.String())

	assert.Equal(t, "2024-03-01 10:00:00", record["datetime"])
	assert.Equal(t, "/check_customer", record["endpoint"])
	assert.Equal(t, "demo", record["source"])
	assert.Equal(t, "203.0.113.7", record["client_ip"])
	assert.Equal(t, "billing-channel/2.1", record["user_agent"])
	assert.Equal(t, map[string]any{"customer_id": "1", "source": "demo"}, record["request_data"])
	assert.Equal(t, decodeEnvelope(t, rec).QueryNumber, record["query_number"])
}

func TestAudit_InvalidRequestIsStillRecorded(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodPost, "/pay_invoices", `{"customer_id":"1","source":"demo"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(f.audit.Bytes(), &record))
	assert.Equal(t, "/pay_invoices", record["endpoint"])
}

func TestAudit_NonJSONBodyIsNotRecorded(t *testing.T) {
	f := newFixture(t, false)

	f.do(http.MethodPost, "/total_amount", `customer_id=1`)

	assert.Zero(t, f.audit.Len())
}

func TestAudit_RawBodyAsString(t *testing.T) {
	f := newFixture(t, false)
	req := httptest.NewRequest(http.MethodPost, "/total_amount", nil)

	f.handler.audit(req, "/total_amount", "demo", []byte("not json"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(f.audit.Bytes(), &record))
	assert.NotNil(t, record["request_data"])
	assert.NotContains(t, record, "query_number")
}

// ─────────────────────────────────────────────
// trace id and query number
// ─────────────────────────────────────────────

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, nil, nil, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	first := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, first.Header().Get(traceIDHeader), 36)
	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}

func TestWithQueryNumber_UniquePerRequest(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, nil, nil, logger.Nop())

	var seen []string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queryNumber, ok := utils.GetQueryNumberFromContext(r.Context())
		require.True(t, ok)
		seen = append(seen, queryNumber)
	})

	handler := h.withQueryNumber(next)
	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	}

	require.Len(t, seen, 2)
	assert.NotEqual(t, seen[0], seen[1])
}

// ─────────────────────────────────────────────
// response writer and method check
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Equal(t, http.StatusOK, w.Status(), "nothing written counts as 200")

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, w.Status())
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, rec, w.Unwrap())
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/pay", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusAccepted) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pay", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pay", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
