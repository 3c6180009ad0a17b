// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

// paymentRequestRepository is the SQL implementation of
// [PaymentRequestRepository] over the "payment_requests" table.
type paymentRequestRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPaymentRequestRepository constructs a [PaymentRequestRepository].
func NewPaymentRequestRepository(db *DB, logger *logger.Logger) PaymentRequestRepository {
	logger.Debug().Msg("creating payment request repository")
	return &paymentRequestRepository{
		db:     db,
		logger: logger,
	}
}

// Register inserts the request row. The unique index on request_guid turns a
// second registration into [ErrDuplicateRequest]; transient driver failures
// are retried.
func (r *paymentRequestRepository) Register(ctx context.Context, request models.PaymentRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRegisterRequestQuery(r.db.builder, request)
	if err != nil {
		log.Err(err).Str("func", "*paymentRequestRepository.Register").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err == nil {
		return nil
	}

	log.Err(err).Str("func", "*paymentRequestRepository.Register").
		Str("guid", request.GUID).
		Str("pg_code", postgresError(err)).
		Msg("error registering payment request")

	switch r.db.classify(err) {
	case Duplicate:
		return ErrDuplicateRequest
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// Exists reports whether the GUID has a registered request.
func (r *paymentRequestRepository) Exists(ctx context.Context, guid string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRequestExistsQuery(r.db.builder, guid)
	if err != nil {
		log.Err(err).Str("func", "*paymentRequestRepository.Exists").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*paymentRequestRepository.Exists").Str("guid", guid).Msg("error looking up payment request")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
