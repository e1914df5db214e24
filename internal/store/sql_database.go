package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

// Dialect names the SQL flavour spoken by a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.Postgres
	DialectSQLite   Dialect = migrations.SQLite
)

// DB is a database handle together with the dialect its queries are built for.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB wraps an already opened connection pool.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{DB: conn, dialect: dialect, logger: log}
}

// Dialect reports the SQL flavour of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the dialect of db,
// logging through the storage logger.
func (db *DB) Migrate(ctx context.Context) error {
	if db.logger != nil {
		ctx = db.logger.WithContext(ctx)
	}
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder using the placeholder format
// of the dialect: $N for postgres, ? for sqlite.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
