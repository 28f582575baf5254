package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The constraint is the authoritative guard for invariants
// like one application per (job, applicant); pre-checks only exist for
// friendlier messages.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// uniqueViolationConstraint returns the violated constraint's name when
// err is a unique violation, for tables carrying more than one unique
// index.
func uniqueViolationConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}
