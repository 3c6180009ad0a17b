package workers

import (
	"context"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled in cfg. A zero health check
// interval leaves the backend probe out.
func NewWorkers(cfg config.Workers, backends adapter.BackendFactory, m *metrics.Metrics, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.HealthCheckInterval > 0 {
		w.workers = append(w.workers, NewBackendHealthWorker(backends, cfg.HealthCheckInterval, m, logger))
	} else {
		logger.Info().Msg("backend health worker disabled")
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
