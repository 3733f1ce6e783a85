package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"pgx unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "users_email_key", true},
		{"pgx unique any constraint", &pgconn.PgError{Code: "23505", ConstraintName: "x"}, "", true},
		{"pgx other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "x"}, "users_email_key", false},
		{"pgx foreign key", &pgconn.PgError{Code: "23503"}, "", false},
		{"pq unique wrapped", fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "products_code_key"}), "products_code_key", true},
		{"pq not null", &pq.Error{Code: "23502"}, "", false},
		{"plain error", errors.New("boom"), "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema {
		mock.ExpectExec(regexp.QuoteMeta("CREATE")).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateStopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("permission denied"))

	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate step 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, _, err := New("sqlite", "file::memory:", 1, 1, "1m")
	assert.Error(t, err)
}
