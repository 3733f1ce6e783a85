package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation from either driver.
// When constraint is non-empty the violated constraint name must match as well.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation && (constraint == "" || pqErr.Constraint == constraint)
	}

	return false
}
