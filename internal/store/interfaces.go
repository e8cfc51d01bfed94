package store

import (
	"context"

	"github.com/MKhiriev/go-hivemind/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ExchangeJournal persists a record of every completed submission.
type ExchangeJournal interface {
	Record(ctx context.Context, exchange models.Exchange) error
	Recent(ctx context.Context, limit uint64) ([]models.Exchange, error)
}

// ResourceRepository is the synchronizer's local resource table.
type ResourceRepository interface {
	// All returns every resource ordered by id.
	All(ctx context.Context) ([]models.HiveResource, error)
	// Get returns the resources with the given ids, ordered by id. Unknown
	// ids are ignored.
	Get(ctx context.Context, ids []uint64) ([]models.HiveResource, error)
	// Save inserts resources or overwrites existing ones with the same id.
	Save(ctx context.Context, resources ...models.HiveResource) error
	// DeleteAllExcept removes every resource whose id is not in keep and
	// reports how many were removed.
	DeleteAllExcept(ctx context.Context, keep []uint64) (int64, error)
}
