package client

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/service"
)

var ErrMissingDependency = errors.New("client: missing dependency")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  BackgroundWorkers
	closer   io.Closer
	logger   *logger.Logger
}

// NewApp assembles the client. closer, typically the local storage, is
// closed when Run returns and may be nil.
func NewApp(services *service.ClientServices, ui UI, workers BackgroundWorkers, closer io.Closer, logger *logger.Logger) (*App, error) {
	if services == nil || services.ProjectSync == nil || ui == nil || workers == nil {
		return nil, ErrMissingDependency
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		closer:   closer,
		logger:   logger,
	}, nil
}

// Run loads the first page (from cache or server), starts the workers and
// shows the UI until the user quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	// a failed first load is shown by the UI from the sync state
	if err := a.services.ProjectSync.Init(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.run").Msg("initial project load failed")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().
		Int("projects", len(a.services.ProjectSync.Projects())).
		Msg("starting terminal ui")

	return a.ui.Run(ctx)
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("error closing storage")
	}
}
