package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrJournalNotMigrated is returned when the exchanges table is missing.
	ErrJournalNotMigrated = errors.New("exchange journal is not migrated")

	// ErrJournalDisabled is returned by the no-op journal on reads.
	ErrJournalDisabled = errors.New("exchange journal is disabled")

	// ErrNothingSaved is returned when a write affected no rows.
	ErrNothingSaved = errors.New("nothing was saved")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRows     = errors.New("failed to scan rows")
)
