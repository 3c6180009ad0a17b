// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
)

// Pinger is anything whose connectivity can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	storage Pinger
}

// NewHealthService checks the audit storage. The backend is probed by the
// health worker instead, since every probe costs a login.
func NewHealthService(storage Pinger) HealthService {
	return &healthService{storage: storage}
}

func (h *healthService) Check(ctx context.Context) error {
	if h.storage == nil {
		return nil
	}
	if err := h.storage.Ping(ctx); err != nil {
		return fmt.Errorf("storage is unavailable: %w", err)
	}
	return nil
}
