package db

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          BIGSERIAL PRIMARY KEY,
		fullname    TEXT NOT NULL,
		email       TEXT NOT NULL,
		password    BYTEA,
		role        TEXT NOT NULL DEFAULT 'customer'
		            CHECK (role IN ('customer', 'vendor', 'admin', 'staff')),
		auth_type   TEXT NOT NULL DEFAULT 'local' CHECK (auth_type IN ('local', 'federated')),
		provider_id TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id           BIGSERIAL PRIMARY KEY,
		code         TEXT NOT NULL,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL,
		price        DOUBLE PRECISION NOT NULL CHECK (price > 0),
		vendor_name  TEXT NOT NULL,
		vendor_email TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT products_code_key UNIQUE (code)
	)`,
	`CREATE INDEX IF NOT EXISTS products_vendor_email_idx ON products (vendor_email)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS refresh_tokens_user_id_idx ON refresh_tokens (user_id)`,
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
