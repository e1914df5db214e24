package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// postgresError returns the SQLSTATE code of err, or "" when err does not
// come from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// sqliteError returns the extended result code of err, or 0 when err does
// not come from SQLite.
func sqliteError(err error) sqlite3.ErrNoExtended {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode
	}

	return 0
}

func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation ||
		sqliteError(err) == sqlite3.ErrConstraintUnique
}

func isForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation ||
		sqliteError(err) == sqlite3.ErrConstraintForeignKey
}
