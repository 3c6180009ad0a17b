// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/handler/http"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/MKhiriev/go-invoice-gateway/internal/service"
	"github.com/MKhiriev/go-invoice-gateway/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

// Deps carries what the transport handlers share besides the services.
type Deps struct {
	Validator   validators.PaymentOrderValidator
	Metrics     *metrics.Metrics
	AuditLogger *logger.Logger
}

func NewHandlers(services *service.Services, deps Deps, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, deps.Validator, deps.Metrics, deps.AuditLogger, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
