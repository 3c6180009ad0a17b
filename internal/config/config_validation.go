// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Every failing group is reported, joined into one error.
func (cfg *StructuredConfig) validate() error {
	var problems []string

	if err := cfg.Backend.validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(cfg.App.AllowedSources) == 0 {
		problems = append(problems, fmt.Sprintf("%s: no allowed sources", ErrInvalidAppConfigs))
	}
	switch cfg.App.PaymentPolicy {
	case "partial", "exact":
	default:
		problems = append(problems, fmt.Sprintf("%s: unknown payment policy %q", ErrInvalidAppConfigs, cfg.App.PaymentPolicy))
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		problems = append(problems, fmt.Sprintf("%s: empty database DSN", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		problems = append(problems, fmt.Sprintf("%s: empty address", ErrInvalidServerConfigs))
	}

	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", ErrInvalidLoggingConfigs, err))
	}

	if cfg.Workers.HealthCheckInterval < 0 {
		problems = append(problems, fmt.Sprintf("%s: negative health check interval", ErrInvalidWorkerConfigs))
	}

	if r := cfg.Tracing.SampleRatio; r <= 0 || r > 1 {
		problems = append(problems, fmt.Sprintf("%s: sample ratio %v outside (0, 1]", ErrInvalidTracingConfigs, r))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

func (b Backend) validate() error {
	if b.URL == "" || b.Database == "" || b.Username == "" || b.Password == "" {
		return fmt.Errorf("%w: url, db, username and password are required", ErrInvalidBackendConfigs)
	}

	u, err := url.Parse(b.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: url must include scheme and host", ErrInvalidBackendConfigs)
	}

	if b.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be positive", ErrInvalidBackendConfigs)
	}

	if b.RetryDelay < 0 {
		return fmt.Errorf("%w: negative retry delay", ErrInvalidBackendConfigs)
	}

	return nil
}
