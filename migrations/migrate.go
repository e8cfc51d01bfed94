package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed journal/*.sql resources/*.sql
var embedMigrations embed.FS

const (
	journalDir   = "journal"
	resourcesDir = "resources"
)

var errNilDB = errors.New("migration error: db is nil")

// MigrateJournal brings the hive's PostgreSQL exchange journal up to date.
func MigrateJournal(db *sql.DB) error {
	return migrate(db, "pgx", embedMigrations, journalDir)
}

// MigrateResources brings a synchronizer's SQLite resource table up to date.
func MigrateResources(db *sql.DB) error {
	return migrate(db, "sqlite3", embedMigrations, resourcesDir)
}

func migrate(db *sql.DB, dialect string, fsys fs.FS, dir string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(fsys)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
