// Package migrations embeds and applies the goose schema migrations of the
// server database (PostgreSQL) and the client cache (SQLite).
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialects understood by [Migrate].
const (
	DialectPostgres = string(goose.DialectPostgres)
	DialectSQLite   = string(goose.DialectSQLite3)
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration of the given dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.Dialect(dialect), db, dir)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(context.Background()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigratePostgres applies the server schema.
func MigratePostgres(db *sql.DB) error {
	return Migrate(db, DialectPostgres)
}

// MigrateSQLite applies the client cache schema.
func MigrateSQLite(db *sql.DB) error {
	return Migrate(db, DialectSQLite)
}

func migrationsDir(dialect string) (fs.FS, error) {
	var sub string
	switch dialect {
	case DialectPostgres:
		sub = "postgres"
	case DialectSQLite:
		sub = "sqlite"
	default:
		return nil, fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	dir, err := fs.Sub(embedMigrations, sub)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return dir, nil
}
