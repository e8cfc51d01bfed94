package store

import (
	"database/sql"

	"github.com/MKhiriev/go-hivemind/internal/logger"
)

// DB is a database handle shared by the repositories of one backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed statement is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the verdict of an [ErrorClassificator].
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota
	// Retryable indicates that the failed operation may succeed if attempted again.
	Retryable
)

type neverRetry struct{}

func (neverRetry) Classify(error) ErrorClassification { return NonRetryable }

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
