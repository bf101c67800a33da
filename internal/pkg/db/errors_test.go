package db_test

import (
	"errors"
	"fmt"
	"testing"

	"courier/internal/pkg/db"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgxErr := &pgconn.PgError{Code: "23505", ConstraintName: "ux_reviews_parcel_reviewer"}
	pqErr := &pq.Error{Code: "23505", Constraint: "ux_reviews_parcel_reviewer"}

	assert.True(t, db.IsUniqueViolation(pgxErr, ""))
	assert.True(t, db.IsUniqueViolation(pgxErr, "ux_reviews_parcel_reviewer"))
	assert.False(t, db.IsUniqueViolation(pgxErr, "other_constraint"))

	assert.True(t, db.IsUniqueViolation(pqErr, ""))
	assert.True(t, db.IsUniqueViolation(pqErr, "ux_reviews_parcel_reviewer"))

	wrapped := fmt.Errorf("create review: %w", pgxErr)
	assert.True(t, db.IsUniqueViolation(wrapped, ""))

	assert.False(t, db.IsUniqueViolation(nil, ""))
	assert.False(t, db.IsUniqueViolation(errors.New("plain error"), ""))
	assert.False(t, db.IsUniqueViolation(&pgconn.PgError{Code: "40001"}, ""))
}

func TestIsConnectionFailure(t *testing.T) {
	assert.True(t, db.IsConnectionFailure(&pgconn.PgError{Code: "08006"}))
	assert.True(t, db.IsConnectionFailure(&pq.Error{Code: "08001"}))
	assert.False(t, db.IsConnectionFailure(&pgconn.PgError{Code: "23505"}))
	assert.False(t, db.IsConnectionFailure(errors.New("plain error")))
	assert.False(t, db.IsConnectionFailure(nil))
}
