// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/MKhiriev/go-invoice-gateway/internal/store"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

type Services struct {
	CustomerService CustomerService
	PaymentService  PaymentService
	AuthService     AuthService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(
	backends adapter.BackendFactory,
	storages *store.Storages,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	policy, err := ParsePaymentPolicy(cfg.App.PaymentPolicy)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CustomerService: NewCustomerService(backends, logger),
		PaymentService: NewPaymentService(backends, storages.PaymentRequestRepository, storages.PaymentAuditRepository, PaymentServiceOptions{
			Policy:      policy,
			JournalName: cfg.Backend.JournalName,
			Metrics:     m,
		}, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
		HealthService:  NewHealthService(storages),
	}, nil
}

// ParsePaymentPolicy maps a configuration value onto a policy. Empty means
// partial.
func ParsePaymentPolicy(value string) (models.PaymentPolicy, error) {
	switch models.PaymentPolicy(value) {
	case "", models.PolicyPartial:
		return models.PolicyPartial, nil
	case models.PolicyExact:
		return models.PolicyExact, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentPolicy, value)
	}
}
