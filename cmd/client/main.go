package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/project-pilot/internal/adapter"
	"github.com/MKhiriev/project-pilot/internal/client"
	"github.com/MKhiriev/project-pilot/internal/config"
	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/service"
	"github.com/MKhiriev/project-pilot/internal/store"
	"github.com/MKhiriev/project-pilot/internal/tui"
	"github.com/MKhiriev/project-pilot/internal/validators"
	"github.com/MKhiriev/project-pilot/internal/workers"
	"github.com/MKhiriev/project-pilot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		// the file logger needs the config, so this one goes to stderr
		logger.NewClientLogger("project-pilot-client", "", "error").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("project-pilot-client", cfg.Logging.File, cfg.Logging.Level)
	log.Info().Str("build", buildInfo.String()).Msg("starting client")
	log.Debug().Any("config", redacted(*cfg)).Msg("received configs")

	projectAdapter, err := adapter.NewHTTPProjectAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create project adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, projectAdapter, cfg.App, log)

	ui, err := tui.New(services, validators.NewProjectValidator(), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, workers.NewClientWorkers(services, cfg.Workers, log), storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// redacted hides the bearer token before the config is logged.
func redacted(cfg config.ClientConfig) config.ClientConfig {
	if cfg.Adapter.Token != "" {
		cfg.Adapter.Token = "***"
	}
	return cfg
}
