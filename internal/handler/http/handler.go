// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/MKhiriev/go-invoice-gateway/internal/service"
	"github.com/MKhiriev/go-invoice-gateway/internal/utils"
	"github.com/MKhiriev/go-invoice-gateway/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.PaymentOrderValidator
	metrics   *metrics.Metrics

	// auditLogger receives one record per payment endpoint call.
	auditLogger *logger.Logger
	logger      *logger.Logger

	queryNumbers *utils.UUIDGenerator
	now          func() time.Time
}

func NewHandler(
	services *service.Services,
	validator validators.PaymentOrderValidator,
	m *metrics.Metrics,
	auditLogger *logger.Logger,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")

	if auditLogger == nil {
		auditLogger = logger
	}

	return &Handler{
		services:     services,
		validator:    validator,
		metrics:      m,
		auditLogger:  auditLogger,
		logger:       logger,
		queryNumbers: utils.NewUUIDGenerator(),
		now:          time.Now,
	}
}
