// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-gateway/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildRegisterRequestQuery(t *testing.T) {
	req := models.PaymentRequest{
		GUID:        "g-1",
		CustomerID:  "0500000001",
		TotalAmount: decimal.RequireFromString("150.50"),
		Source:      "esadad",
	}

	t.Run("postgres placeholders", func(t *testing.T) {
		query, args, err := buildRegisterRequestQuery(dollar, req)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "insert into payment_requests")
		require.Contains(t, q, "request_guid")
		require.Contains(t, query, "$4")

		require.Len(t, args, 4)
		assert.Equal(t, "g-1", args[0])
		assert.Equal(t, "0500000001", args[1])
		assert.True(t, req.TotalAmount.Equal(args[2].(decimal.Decimal)))
		assert.Equal(t, "esadad", args[3])
	})

	t.Run("sqlite placeholders", func(t *testing.T) {
		query, _, err := buildRegisterRequestQuery(question, req)
		require.NoError(t, err)
		assert.NotContains(t, query, "$1")
		assert.Equal(t, 4, strings.Count(query, "?"))
	})
}

func Test_buildRequestExistsQuery(t *testing.T) {
	query, args, err := buildRequestExistsQuery(dollar, "g-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from payment_requests")
	require.Contains(t, q, "request_guid = $1")
	require.Contains(t, q, "limit 1")
	require.Equal(t, []any{"g-1"}, args)
}

func Test_buildInvoiceStatesInsert(t *testing.T) {
	invoices := []models.Invoice{
		{ID: 1, AmountTotal: decimal.NewNullDecimal(decimal.NewFromInt(50)), AmountResidual: decimal.NewNullDecimal(decimal.NewFromInt(50)), State: "posted"},
		{ID: 2, State: "posted"},
	}

	query, args, err := buildInvoiceStatesInsert(dollar, "g-1", models.StageBefore, invoices).ToSql()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into invoice_state_log")
	require.Contains(t, query, "$12")
	require.Len(t, args, 12)

	assert.Equal(t, "g-1", args[0])
	assert.Equal(t, "before", args[1])
	assert.Equal(t, int64(1), args[2])
	assert.Equal(t, int64(2), args[8])
	assert.False(t, args[10].(decimal.NullDecimal).Valid, "missing residual stored as NULL")
}

func Test_buildInvoiceResultsInsert(t *testing.T) {
	results := []models.AllocationResult{
		{
			InvoiceID:         10,
			InvoiceTotal:      decimal.NewFromInt(50),
			AmountApplied:     decimal.NewFromInt(50),
			AmountRemaining:   decimal.NewNullDecimal(decimal.Zero),
			Status:            models.OutcomeCompleted,
			PaymentRegisterID: 77,
		},
		{
			InvoiceID:    11,
			InvoiceTotal: decimal.NewFromInt(30),
			Status:       models.OutcomeSkipped,
			Reason:       models.ReasonInsufficientFunds,
		},
	}

	query, args, err := buildInvoiceResultsInsert(dollar, "g-1", results).ToSql()
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "insert into payment_invoice_result")
	require.Len(t, args, 16)

	registerID, ok := args[7].(*int64)
	require.True(t, ok)
	require.NotNil(t, registerID)
	assert.Equal(t, int64(77), *registerID)

	assert.Equal(t, "skipped", args[13])
	assert.Equal(t, models.ReasonInsufficientFunds, args[14])
	assert.Nil(t, args[15].(*int64))
}

func TestNewDB_PlaceholderFollowsDialect(t *testing.T) {
	conn, _ := newTestDB(t)

	pgQuery, _, err := buildRequestExistsQuery(newPostgresDB(conn).builder, "g-1")
	require.NoError(t, err)
	assert.Contains(t, pgQuery, "request_guid = $1")

	liteQuery, _, err := buildRequestExistsQuery(newSQLiteDB(conn).builder, "g-1")
	require.NoError(t, err)
	assert.Contains(t, liteQuery, "request_guid = ?")
	assert.NotContains(t, liteQuery, "$1")
}
