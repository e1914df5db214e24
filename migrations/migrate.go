// Package migrations embeds the SQL schema of go-todo-keeper and applies it
// with goose. Each supported driver has its own directory of migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Driver names accepted by [Migrate]. They match the values of the
// storage driver setting.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

var errNilDB = errors.New("db is nil")

// gooseDialects maps a driver name to its goose dialect and migration dir.
var gooseDialects = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	Postgres: {dialect: goose.DialectPostgres, dir: "postgres"},
	SQLite:   {dialect: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies all pending migrations for driver to db. Each call builds
// its own goose provider, so migrations of different databases may run
// concurrently. Applied versions are logged through the context logger.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	d, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	migrationsFS, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", d.dir, err)
	}

	provider, err := goose.NewProvider(d.dialect, db, migrationsFS)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, r := range results {
		log.Info().
			Str("driver", driver).
			Int64("version", r.Source.Version).
			Str("file", r.Source.Path).
			Dur("duration", r.Duration).
			Msg("migration applied")
	}

	return nil
}
