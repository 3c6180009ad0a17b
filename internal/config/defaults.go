// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultMaxAttempts    = 3
	defaultRetryDelay     = time.Second
	defaultBackendTimeout = 30 * time.Second
	defaultServerAddress  = "localhost:8080"
	defaultServerTimeout  = 60 * time.Second
	defaultLogLevel       = "info"
	defaultLogMaxSizeMB   = 10
	defaultLogMaxBackups  = 5
	defaultPaymentPolicy  = "partial"
	defaultSampleRatio    = 1.0
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AllowedSources: []string{"demo", "esadad"},
			PaymentPolicy:  defaultPaymentPolicy,
		},
		Backend: Backend{
			RequestTimeout: defaultBackendTimeout,
			MaxAttempts:    defaultMaxAttempts,
			RetryDelay:     defaultRetryDelay,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerTimeout,
		},
		Logging: Logging{
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Tracing: Tracing{
			SampleRatio: defaultSampleRatio,
		},
	}
}
