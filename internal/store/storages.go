package store

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/logger"
)

// Storages groups the hive's persistence.
type Storages struct {
	ExchangeJournal ExchangeJournal

	db *DB
}

// NewStorages connects and migrates the journal database. An empty DSN
// yields a no-op journal.
func NewStorages(ctx context.Context, cfg config.DB, clock clockwork.Clock, log *logger.Logger) (*Storages, error) {
	if cfg.DSN == "" {
		log.Info().Msg("no journal database configured; exchanges will not be recorded")
		return &Storages{ExchangeJournal: NewNopJournal()}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.MigrateJournal(); err != nil {
		log.Err(err).Msg("error migrating journal database")
		db.Close()
		return nil, err
	}

	return &Storages{
		ExchangeJournal: NewExchangeJournal(db, clock, log),
		db:              db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SynchronizerStorages groups a synchronizer's persistence.
type SynchronizerStorages struct {
	Resources ResourceRepository

	db *DB
}

// NewSynchronizerStorages opens and migrates the local resource file.
func NewSynchronizerStorages(ctx context.Context, dsn string, log *logger.Logger) (*SynchronizerStorages, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.MigrateResources(); err != nil {
		log.Err(err).Msg("error migrating resource database")
		db.Close()
		return nil, err
	}

	return &SynchronizerStorages{
		Resources: NewResourceRepository(db, log),
		db:        db,
	}, nil
}

// Close releases the database connection.
func (s *SynchronizerStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
