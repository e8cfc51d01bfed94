// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/metrics"
	"github.com/MKhiriev/go-hivemind/internal/validators"
	"github.com/MKhiriev/go-hivemind/models"
)

// retainedHistory is how many submissions per client survive
// ClearTransientState.
const retainedHistory = 2

// Hive is the coordinator. A process holds exactly one, shared by every
// transport. All state lives in one guarded aggregate; validation and
// logging happen outside the lock.
type Hive struct {
	mu    sync.Mutex
	state hiveState

	validator validators.Validator
	clock     clockwork.Clock
	logger    *logger.Logger
}

// NewHive returns an empty hive. Submissions are timestamped with clock.
func NewHive(clock clockwork.Clock, log *logger.Logger) *Hive {
	log.Debug().Msg("creating hive")
	return &Hive{
		state:     newHiveState(),
		validator: validators.NewSubmissionValidator(),
		clock:     clock,
		logger:    log,
	}
}

type decision int

const (
	decisionNone decision = iota
	decisionGated
	decisionPromoted
	decisionUpdate
	decisionFetchRequested
	decisionAwaitingDelivery
	decisionPayloadStaged
	decisionOrphanPayload
	decisionEmptyPayload
	decisionUnknownContent
)

var decisionNames = map[decision]string{
	decisionNone:             "none",
	decisionGated:            "forced update pending",
	decisionPromoted:         "promoted to latest",
	decisionUpdate:           "deletion propagated to peers",
	decisionFetchRequested:   "fetch requested from latest holder",
	decisionAwaitingDelivery: "behind, payload already staged",
	decisionPayloadStaged:    "payload staged for waiting clients",
	decisionOrphanPayload:    "payload without pending fetch dropped",
	decisionEmptyPayload:     "empty payload ignored",
	decisionUnknownContent:   "unknown content kind ignored",
}

func (d decision) String() string {
	return decisionNames[d]
}

// verdict records what a submission did to the state, so it can be logged
// and reported once the lock is released.
type verdict struct {
	decision     decision
	compared     bool
	outcome      models.Outcome
	source       string
	destinations int
}

func (h *Hive) Submit(ctx context.Context, submission models.Submission) (models.Action, error) {
	log := logger.FromContext(ctx)

	if err := h.validator.Validate(ctx, submission, validators.FieldClientID); err != nil {
		return h.reject(log, submission, err)
	}

	// A client owing a forced update gets it whatever it sent.
	if action, ok := h.popForced(submission.ClientID); ok {
		h.report(log, submission, verdict{decision: decisionGated})
		h.finish(log, submission, action)
		return action, nil
	}

	if err := h.validator.Validate(ctx, submission, validators.FieldDigest); err != nil {
		return h.reject(log, submission, err)
	}

	log.Info().
		Str("client_id", submission.ClientID).
		Str("kind", submission.Content.Kind.String()).
		Int("size", len(submission.Body)).
		Msg("processing submission")

	incoming := essence.NewObserved(submission.Body, h.clock.Now())
	defer incoming.Release()

	h.mu.Lock()
	v := verdict{decision: decisionGated}
	if _, forced := h.state.forcedUpdate[submission.ClientID]; !forced {
		v = h.absorb(submission, incoming)
	}
	action := h.nextAction(submission.ClientID)
	tracked := len(h.state.history)
	h.mu.Unlock()

	h.report(log, submission, v)
	metrics.SetTrackedClients(tracked)
	h.finish(log, submission, action)

	return action, nil
}

// popForced hands out a pending forced update, if the client has one.
func (h *Hive) popForced(clientID string) (models.Action, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, forced := h.state.forcedUpdate[clientID]; !forced {
		return models.Action{}, false
	}
	return h.nextAction(clientID), true
}

func (h *Hive) reject(log *logger.Logger, submission models.Submission, err error) (models.Action, error) {
	log.Warn().Err(err).
		Str("client_id", submission.ClientID).
		Str("kind", submission.Content.Kind.String()).
		Msg("submission rejected")
	return models.NoAction(), err
}

func (h *Hive) finish(log *logger.Logger, submission models.Submission, action models.Action) {
	log.Info().
		Str("client_id", submission.ClientID).
		Str("action", action.Kind.String()).
		Msg("finished processing submission")
}

// absorb applies a submission from a client without a pending forced update.
func (h *Hive) absorb(submission models.Submission, incoming *essence.Observed) verdict {
	var v verdict

	switch {
	case submission.Content.Kind == models.ContentKindDigest:
		v = h.absorbDigest(submission, incoming)
	case submission.Content.Kind.IsPayload() && incoming.HasData():
		v = h.absorbPayload(submission, incoming)
	case submission.Content.Kind.IsPayload():
		v.decision = decisionEmptyPayload
	default:
		v.decision = decisionUnknownContent
	}

	h.state.history[submission.ClientID] = append(h.state.history[submission.ClientID], incoming.Clone())
	if h.state.latest == nil {
		h.state.promote(submission.ClientID, incoming)
	}

	return v
}

func (h *Hive) absorbDigest(submission models.Submission, incoming *essence.Observed) verdict {
	latest := h.state.latest
	if latest == nil {
		return verdict{}
	}

	cmp := essence.Compare(latest.digest, incoming)
	defer clear(cmp.Difference)

	v := verdict{compared: true, outcome: cmp.Outcome, source: latest.clientID}

	switch cmp.Outcome {
	case models.OutcomeBehind:
		h.state.promote(submission.ClientID, incoming)
		v.decision = decisionPromoted

	case models.OutcomeAhead:
		if h.isUpdate(submission.ClientID) {
			h.state.promote(submission.ClientID, incoming)
			for peer := range h.state.history {
				if peer == submission.ClientID {
					continue
				}
				if old, ok := h.state.forcedUpdate[peer]; ok {
					old.Release()
				}
				h.state.forcedUpdate[peer] = incoming.Clone()
				v.destinations++
			}
			v.decision = decisionUpdate
			return v
		}

		if _, staged := h.state.readyPayload[submission.ClientID]; staged {
			v.decision = decisionAwaitingDelivery
			return v
		}

		if len(cmp.Difference) == 0 {
			return v
		}

		q, ok := h.state.pendingFetch[latest.clientID]
		if !ok {
			q = newFetchQueue()
			h.state.pendingFetch[latest.clientID] = q
		}
		q.put(submission.ClientID, fetchRequest{
			diff:          essence.NewObserved(cmp.Difference, incoming.ObservedAt()),
			requestedType: submission.Content.RequestedType,
		})
		v.decision = decisionFetchRequested
	}

	return v
}

// isUpdate reports whether the client was in sync with the latest digest
// before this submission, which makes a smaller digest a deletion rather
// than staleness.
func (h *Hive) isUpdate(clientID string) bool {
	last := h.state.lastSubmission(clientID)
	return last != nil && last.Equal(h.state.latest.digest)
}

func (h *Hive) absorbPayload(submission models.Submission, incoming *essence.Observed) verdict {
	q, ok := h.state.pendingFetch[submission.ClientID]
	if !ok {
		return verdict{decision: decisionOrphanPayload}
	}

	v := verdict{decision: decisionPayloadStaged}
	for _, dest := range q.destinations() {
		if old, staged := h.state.readyPayload[dest]; staged {
			old.body.Release()
		}
		h.state.readyPayload[dest] = stagedPayload{body: incoming.Clone(), mediaType: submission.Content.MediaType}
		v.destinations++
	}
	q.release()
	delete(h.state.pendingFetch, submission.ClientID)

	return v
}

// nextAction pops the client's pending work. A forced update beats
// everything; a client that is both a fetch source and a destination has its
// fetch requests dropped and keeps the staged payload for its next call.
func (h *Hive) nextAction(clientID string) models.Action {
	if forced, ok := h.state.forcedUpdate[clientID]; ok {
		delete(h.state.forcedUpdate, clientID)
		action := models.Action{Kind: models.ActionForceUpdate, Body: forced.Bytes()}
		forced.Release()
		return action
	}

	q, isSource := h.state.pendingFetch[clientID]
	ready, isDestination := h.state.readyPayload[clientID]

	switch {
	case isSource && isDestination:
		q.release()
		delete(h.state.pendingFetch, clientID)
		return models.NoAction()

	case isSource:
		_, req, ok := q.first()
		if !ok {
			delete(h.state.pendingFetch, clientID)
			return models.NoAction()
		}
		return models.Action{
			Kind:          models.ActionRequestFetch,
			Body:          req.diff.Bytes(),
			RequestedType: req.requestedType,
		}

	case isDestination:
		delete(h.state.readyPayload, clientID)
		action := models.Action{
			Kind:      models.ActionDeliverPayload,
			Body:      ready.body.Bytes(),
			MediaType: ready.mediaType,
		}
		ready.body.Release()
		return action
	}

	return models.NoAction()
}

func (h *Hive) report(log *logger.Logger, submission models.Submission, v verdict) {
	if v.compared {
		metrics.ReportComparison(v.outcome)
	}

	switch v.decision {
	case decisionOrphanPayload:
		metrics.ReportOrphanPayload()
		log.Warn().Str("client_id", submission.ClientID).
			Msg("payload received but nothing was requested from this client; this might point to a synchronization issue")
	case decisionEmptyPayload:
		log.Warn().Str("client_id", submission.ClientID).Msg("payload submission without any data")
	case decisionUnknownContent:
		log.Warn().Str("client_id", submission.ClientID).Msg("submission without a recognised content type")
	case decisionNone:
		if v.compared {
			log.Debug().Str("client_id", submission.ClientID).Str("outcome", v.outcome.String()).Msg("digest compared")
		}
	default:
		log.Debug().
			Str("client_id", submission.ClientID).
			Str("outcome", v.outcome.String()).
			Str("latest_holder", v.source).
			Int("destinations", v.destinations).
			Msg(v.decision.String())
	}
}

func (h *Hive) Clear(ctx context.Context, mode models.ClearMode) error {
	switch mode {
	case models.ClearInert:
		h.ClearTransientState(ctx)
	case models.ClearAll:
		h.ClearAllState(ctx)
	default:
		return models.ErrUnrecognizedControlValue
	}

	return nil
}

func (h *Hive) ClearTransientState(ctx context.Context) {
	h.mu.Lock()
	released := h.state.trimHistory(retainedHistory)
	tracked := len(h.state.history)
	h.mu.Unlock()

	metrics.ReportReset(models.ClearInert)
	metrics.SetTrackedClients(tracked)
	logger.FromContext(ctx).Info().Int("released", released).Msg("cleared transient state")
}

func (h *Hive) ClearAllState(ctx context.Context) {
	h.mu.Lock()
	h.state.reset()
	h.mu.Unlock()

	metrics.ReportReset(models.ClearAll)
	metrics.SetTrackedClients(0)
	logger.FromContext(ctx).Info().Msg("cleared all state")
}
