package workers

import (
	"context"

	"github.com/MKhiriev/project-pilot/internal/config"
	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers builds the background workers of the client. The refresh
// worker is only added when cfg.RefreshInterval is positive.
func NewClientWorkers(services *service.ClientServices, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.RefreshInterval > 0 {
		w.workers = append(w.workers, NewRefreshWorker(services.ProjectSync, cfg.RefreshInterval, logger))
	}
	return w
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
