package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/models"
)

const (
	maxJournalAttempts = 3
	// journalRetryDelay grows linearly with each failed attempt.
	journalRetryDelay = 50 * time.Millisecond
)

type exchangeJournal struct {
	*DB
	clock  clockwork.Clock
	logger *logger.Logger
}

// NewExchangeJournal returns a PostgreSQL backed [ExchangeJournal]. clock
// paces retries of failed writes.
func NewExchangeJournal(db *DB, clock clockwork.Clock, log *logger.Logger) ExchangeJournal {
	log.Debug().Msg("creating exchange journal")
	return &exchangeJournal{DB: db, clock: clock, logger: log}
}

func (j *exchangeJournal) Record(ctx context.Context, exchange models.Exchange) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(exchangesTable).
		Columns("client_id", "content_kind", "action", "body_size", "fingerprint", "created_at").
		Values(exchange.ClientID, exchange.ContentKind, exchange.Action, exchange.BodySize, exchange.Fingerprint, exchange.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = j.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if postgresError(err) == pgerrcode.UndefinedTable {
			return ErrJournalNotMigrated
		}
		if attempt >= maxJournalAttempts || j.classify(err) != Retryable || !j.backoff(ctx, attempt) {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying journal write")
	}

	log.Err(err).Str("client_id", exchange.ClientID).Msg("error recording exchange")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// backoff waits before the next attempt and reports whether ctx allows one.
func (j *exchangeJournal) backoff(ctx context.Context, attempt int) bool {
	select {
	case <-ctx.Done():
		return false
	case <-j.clock.After(time.Duration(attempt) * journalRetryDelay):
		return true
	}
}

func (j *exchangeJournal) Recent(ctx context.Context, limit uint64) ([]models.Exchange, error) {
	query, args, err := psql.Select(exchangeColumns...).
		From(exchangesTable).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.QueryContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UndefinedTable {
			return nil, ErrJournalNotMigrated
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	exchanges := make([]models.Exchange, 0, limit)
	for rows.Next() {
		var e models.Exchange
		if err = rows.Scan(&e.ID, &e.ClientID, &e.ContentKind, &e.Action, &e.BodySize, &e.Fingerprint, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		exchanges = append(exchanges, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return exchanges, nil
}

type nopJournal struct{}

// NewNopJournal returns an [ExchangeJournal] that drops every record. It
// backs the hive when no journal database is configured.
func NewNopJournal() ExchangeJournal {
	return nopJournal{}
}

func (nopJournal) Record(context.Context, models.Exchange) error { return nil }

func (nopJournal) Recent(context.Context, uint64) ([]models.Exchange, error) {
	return nil, ErrJournalDisabled
}

// IsJournalUnavailable reports whether err means the journal cannot serve
// reads at all, as opposed to a transient failure.
func IsJournalUnavailable(err error) bool {
	return errors.Is(err, ErrJournalDisabled) || errors.Is(err, ErrJournalNotMigrated)
}

