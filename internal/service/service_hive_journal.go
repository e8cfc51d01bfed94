package service

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/internal/utils"
	"github.com/MKhiriev/go-hivemind/internal/workers"
	"github.com/MKhiriev/go-hivemind/models"
)

// CoordinatorJournalService records every accepted submission in the
// exchange journal. Writes are handed to a TaskRunner so database latency
// never reaches the caller; a failed write is logged and otherwise ignored.
type CoordinatorJournalService struct {
	inner Coordinator

	journal store.ExchangeJournal
	runner  workers.TaskRunner
	clock   clockwork.Clock
}

func NewCoordinatorJournalService(journal store.ExchangeJournal, runner workers.TaskRunner, clock clockwork.Clock) CoordinatorWrapper {
	return &CoordinatorJournalService{journal: journal, runner: runner, clock: clock}
}

func (j *CoordinatorJournalService) Submit(ctx context.Context, submission models.Submission) (models.Action, error) {
	action, err := j.inner.Submit(ctx, submission)
	if err != nil {
		return action, err
	}

	exchange := models.Exchange{
		ClientID:    submission.ClientID,
		ContentKind: submission.Content.Kind.String(),
		Action:      action.Kind.String(),
		BodySize:    len(submission.Body),
		Fingerprint: utils.Fingerprint(submission.Body),
		CreatedAt:   j.clock.Now(),
	}

	// the request context ends with the response
	recordCtx := context.WithoutCancel(ctx)
	j.runner.Submit(func() {
		if err := j.journal.Record(recordCtx, exchange); err != nil {
			logger.FromContext(recordCtx).Err(err).Str("client_id", exchange.ClientID).Msg("failed to journal exchange")
		}
	})

	return action, nil
}

func (j *CoordinatorJournalService) Wrap(coordinator Coordinator) Coordinator {
	j.inner = coordinator
	return j
}
