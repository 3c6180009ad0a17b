// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/MKhiriev/go-invoice-gateway/internal/mock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(t.Context())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(t.Context())
}

func TestNewWorkers_HealthCheckDisabled(t *testing.T) {
	ws := NewWorkers(config.Workers{}, nil, nil, logger.Nop())

	assert.Empty(t, ws.workers)
}

func TestNewWorkers_HealthCheckEnabled(t *testing.T) {
	ws := NewWorkers(config.Workers{HealthCheckInterval: time.Minute}, nil, nil, logger.Nop())

	require.Len(t, ws.workers, 1)
	assert.IsType(t, &BackendHealthWorker{}, ws.workers[0])
}

func backendUp(t *testing.T, m *metrics.Metrics) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if strings.HasSuffix(f.GetName(), "backend_up") {
			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatal("backend_up gauge not registered")
	return 0
}

func TestBackendHealthWorker_Probe(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	factory := mock.NewMockBackendFactory(ctrl)
	factory.EXPECT().NewBackend().Return(backend).Times(2)

	m := metrics.New()
	w := NewBackendHealthWorker(factory, time.Second, m, logger.Nop())

	backend.EXPECT().Ping(gomock.Any()).Return(nil)
	w.probe(t.Context())
	assert.True(t, w.Up())
	assert.Equal(t, 1.0, backendUp(t, m))

	backend.EXPECT().Ping(gomock.Any()).Return(adapter.ErrAuthFailed)
	w.probe(t.Context())
	assert.False(t, w.Up())
	assert.Equal(t, 0.0, backendUp(t, m))
}

func TestBackendHealthWorker_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	factory := mock.NewMockBackendFactory(ctrl)

	var probes atomic.Int32
	factory.EXPECT().NewBackend().Return(backend).AnyTimes()
	backend.EXPECT().Ping(gomock.Any()).DoAndReturn(func(context.Context) error {
		probes.Add(1)
		return nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(t.Context())
	w := NewBackendHealthWorker(factory, 10*time.Millisecond, nil, logger.Nop())
	w.Run(ctx)

	assert.Eventually(t, func() bool { return probes.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	stopped := probes.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, probes.Load())
}
