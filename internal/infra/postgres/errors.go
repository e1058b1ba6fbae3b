package postgres

import (
	"errors"

	"github.com/jackc/pgconn"
)

// uniqueViolation is the SQLSTATE for a violated unique constraint.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation.
// The unique indexes on the ledgers are the authoritative duplicate signal;
// callers translate this into the matching domain sentinel.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
