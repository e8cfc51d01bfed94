package store

import sq "github.com/Masterminds/squirrel"

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

const (
	exchangesTable = "exchanges"
	resourcesTable = "resources"
)

var exchangeColumns = []string{"id", "client_id", "content_kind", "action", "body_size", "fingerprint", "created_at"}

const upsertResourceSuffix = "ON CONFLICT(id) DO UPDATE SET version = excluded.version, data = excluded.data"
