package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/handler"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/server"
	"github.com/MKhiriev/go-hivemind/internal/service"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/internal/workers"
	"github.com/MKhiriev/go-hivemind/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("hive", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("hive", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	clock := clockwork.NewRealClock()

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	pool := workers.NewPool(cfg.Server.MaxWorkers, cfg.Server.MaxQueuedTasks, log)
	defer pool.Close()

	services, err := service.NewServices(storages, pool, clock, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	retention := workers.NewTickerWorker("retention", cfg.Workers.RetentionInterval, clock, func(ctx context.Context) error {
		services.Sessions.ClearTransientState(ctx)
		return nil
	}, log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(retention), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
