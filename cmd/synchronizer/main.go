package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/adapter"
	"github.com/MKhiriev/go-hivemind/internal/client"
	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/service"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetSynchronizerConfig()
	if err != nil {
		logger.NewLogger("synchronizer", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("synchronizer", cfg.LogLevel)

	storages, err := store.NewSynchronizerStorages(context.Background(), cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening local resources")
	}

	hive, err := adapter.NewHTTPHiveAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating hive adapter")
	}

	services := service.NewSynchronizerServices(storages, hive, clockwork.NewRealClock(), *cfg, log)

	app, err := client.NewApp(services, storages, cfg.SyncInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating synchronizer")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("synchronizer stopped with error")
	}
}
