package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmptyConnectionString   = errors.New("pg: empty connection string, set PG_CONN_URL")
	ErrFailedToParseDBConfig   = errors.New("pg: failed to parse config")
	ErrFailedToOpenConnection  = errors.New("pg: failed to open connection")
	ErrHealthcheckFailed       = errors.New("pg: healthcheck failed")
	ErrFailedToApplyMigrations = errors.New("pg: failed to apply migrations")
)

const uniqueViolation = "23505"

// IsNotFoundError reports whether err means the query matched no rows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
