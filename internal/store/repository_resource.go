package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/models"
)

type resourceRepository struct {
	*DB
	logger *logger.Logger
}

// NewResourceRepository returns a SQLite backed [ResourceRepository].
func NewResourceRepository(db *DB, log *logger.Logger) ResourceRepository {
	log.Debug().Msg("creating resource repository")
	return &resourceRepository{DB: db, logger: log}
}

func (r *resourceRepository) All(ctx context.Context) ([]models.HiveResource, error) {
	return r.list(ctx, sqlite.Select("id", "version", "data").From(resourcesTable).OrderBy("id"))
}

func (r *resourceRepository) Get(ctx context.Context, ids []uint64) ([]models.HiveResource, error) {
	if len(ids) == 0 {
		return []models.HiveResource{}, nil
	}

	return r.list(ctx, sqlite.Select("id", "version", "data").
		From(resourcesTable).
		Where(sq.Eq{"id": ids}).
		OrderBy("id"))
}

func (r *resourceRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]models.HiveResource, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing resources")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	resources := make([]models.HiveResource, 0)
	for rows.Next() {
		var (
			res  models.HiveResource
			data []byte
		)
		if err = rows.Scan(&res.ID, &res.Version, &data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if len(data) > 0 {
			res.Data = json.RawMessage(data)
		}
		resources = append(resources, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}

func (r *resourceRepository) Save(ctx context.Context, resources ...models.HiveResource) error {
	if len(resources) == 0 {
		return nil
	}

	builder := sqlite.Insert(resourcesTable).Columns("id", "version", "data")
	for _, res := range resources {
		var data any
		if len(res.Data) > 0 {
			data = []byte(res.Data)
		}
		builder = builder.Values(res.ID, res.Version, data)
	}

	query, args, err := builder.Suffix(upsertResourceSuffix).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("count", len(resources)).Msg("error saving resources")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNothingSaved
	}

	return nil
}

func (r *resourceRepository) DeleteAllExcept(ctx context.Context, keep []uint64) (int64, error) {
	builder := sqlite.Delete(resourcesTable)
	if len(keep) > 0 {
		builder = builder.Where(sq.NotEq{"id": keep})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error deleting resources")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}
