package workers

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/logger"
)

// TickerWorker calls job on every tick of a clockwork ticker.
type TickerWorker struct {
	name     string
	interval time.Duration
	clock    clockwork.Clock
	job      func(ctx context.Context) error
	logger   *logger.Logger
}

// NewTickerWorker returns nil when interval is not positive, which
// [NewWorkers] skips.
func NewTickerWorker(name string, interval time.Duration, clock clockwork.Clock, job func(ctx context.Context) error, log *logger.Logger) Worker {
	if interval <= 0 {
		return nil
	}
	return &TickerWorker{
		name:     name,
		interval: interval,
		clock:    clock,
		job:      job,
		logger:   log,
	}
}

func (w *TickerWorker) Run(ctx context.Context) {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	ctx = w.logger.With().Str("worker", w.name).Logger().WithContext(ctx)

	w.logger.Info().Str("worker", w.name).Dur("interval", w.interval).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("worker", w.name).Msg("worker stopped")
			return
		case <-ticker.Chan():
			if err := w.job(ctx); err != nil {
				w.logger.Err(err).Str("worker", w.name).Msg("worker job failed")
			}
		}
	}
}
