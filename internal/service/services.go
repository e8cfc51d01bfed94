package service

import (
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/adapter"
	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/internal/workers"
)

// Services is what the hive's transports call into. Coordinator and
// Sessions share one Hive.
type Services struct {
	Coordinator    Coordinator
	Sessions       SessionManager
	JournalService JournalService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, runner workers.TaskRunner, clock clockwork.Clock, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hive := NewHive(clock, logger)

	var coordinator Coordinator = hive
	for _, w := range []CoordinatorWrapper{
		NewCoordinatorJournalService(storages.ExchangeJournal, runner, clock),
		NewCoordinatorMetricsService(),
	} {
		coordinator = w.Wrap(coordinator)
	}

	return &Services{
		Coordinator:    coordinator,
		Sessions:       hive,
		JournalService: NewJournalService(storages.ExchangeJournal, logger),
		AppInfoService: appInfo,
	}, nil
}

// SynchronizerServices drives one synchronizer process.
type SynchronizerServices struct {
	Synchronizer Synchronizer
	SyncJob      SyncJob
}

func NewSynchronizerServices(storages *store.SynchronizerStorages, hive adapter.HiveAdapter, clock clockwork.Clock, cfg config.SynchronizerConfig, logger *logger.Logger) *SynchronizerServices {
	synchronizer := NewSynchronizer(storages.Resources, hive, cfg.RequestedType, logger)

	return &SynchronizerServices{
		Synchronizer: synchronizer,
		SyncJob:      NewSyncJob(synchronizer, clock, logger),
	}
}
