// Package db contains helpers for classifying low-level Postgres driver
// errors, independent of whether the connection runs over pgx or lib/pq.
package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// connectionFailureClass is SQLSTATE class 08 (connection exceptions).
const connectionFailureClass = "08"

// IsUniqueViolation reports whether the provided error is a Postgres unique
// constraint violation. When constraintName is provided, the violation must
// reference that constraint.
func IsUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != uniqueViolationCode {
			return false
		}
		return constraintName == "" || pgErr.ConstraintName == constraintName
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) != uniqueViolationCode {
			return false
		}
		return constraintName == "" || pqErr.Constraint == constraintName
	}

	return false
}

// IsConnectionFailure reports whether the provided error is a Postgres
// connection-level failure rather than a statement-level one.
func IsConnectionFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return sqlStateClass(pgErr.Code) == connectionFailureClass
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return sqlStateClass(string(pqErr.Code)) == connectionFailureClass
	}

	return false
}

func sqlStateClass(code string) string {
	if len(code) < 2 {
		return ""
	}
	return code[:2]
}
