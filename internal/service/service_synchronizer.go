package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-hivemind/internal/adapter"
	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/models"
)

type synchronizer struct {
	resources     store.ResourceRepository
	hive          adapter.HiveAdapter
	requestedType string

	mu sync.Mutex
	// staged is a JSON payload answering the hive's last fetch request.
	staged []byte

	logger *logger.Logger
}

// NewSynchronizer returns a [Synchronizer] exchanging resources through
// hive. requestedType is announced with every digest.
func NewSynchronizer(resources store.ResourceRepository, hive adapter.HiveAdapter, requestedType string, log *logger.Logger) Synchronizer {
	return &synchronizer{
		resources:     resources,
		hive:          hive,
		requestedType: requestedType,
		logger:        log,
	}
}

func (s *synchronizer) ClientID() string {
	return s.hive.ClientID()
}

// Sync sends the staged payload if there is one, the local digest otherwise.
// A staged payload is dropped only once the hive has answered.
func (s *synchronizer) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.With().Str("client_id", s.hive.ClientID()).Logger()

	var (
		reply models.Reply
		err   error
	)
	if len(s.staged) > 0 {
		log.Debug().Int("size", len(s.staged)).Msg("uploading requested resources")
		reply, err = s.hive.SendPayload(ctx, s.staged, models.MediaTypeJSON)
		if err == nil {
			s.staged = nil
		}
	} else {
		var digest []byte
		if digest, err = s.localDigest(ctx); err != nil {
			return err
		}
		reply, err = s.hive.SendDigest(ctx, digest, s.requestedType)
	}
	if err != nil {
		return fmt.Errorf("exchange with hive: %w", err)
	}

	return s.apply(ctx, reply)
}

func (s *synchronizer) localDigest(ctx context.Context) ([]byte, error) {
	all, err := s.resources.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading local resources: %w", err)
	}

	entries := make([]models.Resource, 0, len(all))
	for _, r := range all {
		entries = append(entries, r.DigestEntry())
	}

	digest, err := essence.Serialize(entries)
	if err != nil {
		return nil, fmt.Errorf("serializing local digest: %w", err)
	}

	return digest, nil
}

func (s *synchronizer) apply(ctx context.Context, reply models.Reply) error {
	switch reply.StatusCode {
	case http.StatusNoContent:
		s.logger.Debug().Msg("up to date with hive")
		return nil

	case http.StatusOK:
		if reply.ContentType.Kind == models.ContentKindDigest {
			return s.stage(ctx, reply.Body)
		}
		return s.store(ctx, reply)

	case http.StatusConflict:
		return s.prune(ctx, reply.Body)

	default:
		return fmt.Errorf("%w: status %d", ErrUnexpectedReply, reply.StatusCode)
	}
}

// stage loads the resources the hive asked for and keeps them for the next
// exchange.
func (s *synchronizer) stage(ctx context.Context, digest []byte) error {
	ids, err := digestIDs(digest)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	requested, err := s.resources.Get(ctx, ids)
	if err != nil {
		return fmt.Errorf("loading requested resources: %w", err)
	}

	payload, err := json.Marshal(requested)
	if err != nil {
		return fmt.Errorf("encoding requested resources: %w", err)
	}

	s.staged = payload
	s.logger.Info().Int("requested", len(ids)).Int("found", len(requested)).Msg("hive requested resources")

	return nil
}

// store saves resources delivered by the hive.
func (s *synchronizer) store(ctx context.Context, reply models.Reply) error {
	if reply.ContentType.Kind != models.ContentKindJSON {
		s.logger.Warn().Str("media_type", reply.ContentType.MediaType).Msg("ignoring delivered payload of unsupported media type")
		return nil
	}

	var delivered []models.HiveResource
	if err := json.Unmarshal(reply.Body, &delivered); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}

	if err := s.resources.Save(ctx, delivered...); err != nil {
		return fmt.Errorf("saving delivered resources: %w", err)
	}

	s.logger.Info().Int("saved", len(delivered)).Msg("received resources from hive")
	return nil
}

// prune drops every local resource the hive's digest no longer names.
func (s *synchronizer) prune(ctx context.Context, digest []byte) error {
	keep, err := digestIDs(digest)
	if err != nil {
		return err
	}

	deleted, err := s.resources.DeleteAllExcept(ctx, keep)
	if err != nil {
		return fmt.Errorf("pruning local resources: %w", err)
	}

	s.logger.Info().Int64("deleted", deleted).Int("kept", len(keep)).Msg("applied forced update from hive")
	return nil
}

// digestIDs returns the numeric ids named by digest. Records whose id is
// absent or does not fit in uint64 are skipped.
func digestIDs(digest []byte) ([]uint64, error) {
	records, err := essence.Parse(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}

	ids := make([]uint64, 0, len(records))
	for _, r := range records {
		if id, ok := r.ID.(uint64); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
