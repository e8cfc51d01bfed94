package client

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/service"
)

// ErrNoSyncJob is returned by NewApp without a sync job to run.
var ErrNoSyncJob = errors.New("sync job is required")

type App struct {
	services *service.SynchronizerServices
	storage  io.Closer
	interval time.Duration

	logger *logger.Logger
}

// NewApp wires a synchronizer runtime. storage is closed when Run returns
// and may be nil.
func NewApp(services *service.SynchronizerServices, storage io.Closer, interval time.Duration, log *logger.Logger) (*App, error) {
	if services == nil || services.SyncJob == nil {
		return nil, ErrNoSyncJob
	}

	return &App{
		services: services,
		storage:  storage,
		interval: interval,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.RunContext(ctx)
}

func (a *App) RunContext(ctx context.Context) error {
	a.logger.Info().Dur("interval", a.interval).Msg("synchronizer started")

	a.services.SyncJob.Start(ctx, a.interval)
	<-ctx.Done()
	a.services.SyncJob.Stop()

	if a.services.Synchronizer != nil {
		a.logger.Info().Str("client_id", a.services.Synchronizer.ClientID()).Msg("synchronizer stopped")
	}

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			return err
		}
	}

	return nil
}
