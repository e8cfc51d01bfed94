package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/logger"
)

const defaultSyncInterval = 5 * time.Second

type syncJob struct {
	synchronizer Synchronizer
	clock        clockwork.Clock
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a SyncJob that calls synchronizer.Sync on a ticker.
// The job is idle until Start is called.
func NewSyncJob(synchronizer Synchronizer, clock clockwork.Clock, log *logger.Logger) SyncJob {
	return &syncJob{synchronizer: synchronizer, clock: clock, logger: log}
}

// Start implements SyncJob. It stops any previously running loop, syncs once
// right away and then every interval (5s when interval is not positive). The
// loop exits when ctx is cancelled or Stop is called. Failed syncs are
// logged and retried on the next tick.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := j.clock.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *syncJob) runOnce(ctx context.Context) {
	if err := j.synchronizer.Sync(ctx); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Msg("synchronization failed; retrying on next tick")
	}
}

// Stop implements SyncJob. It cancels the loop and blocks until it has
// exited. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
