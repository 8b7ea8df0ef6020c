package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY,
		email      VARCHAR(255) NOT NULL UNIQUE,
		password   VARCHAR(255) NOT NULL,
		role       VARCHAR(20)  NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id           UUID PRIMARY KEY,
		title        VARCHAR(50)  NOT NULL,
		description  VARCHAR(250) NOT NULL,
		release_date DATE         NOT NULL,
		director     VARCHAR(50)  NOT NULL,
		genre        VARCHAR(50)  NOT NULL,
		avg_rating   DOUBLE PRECISION NOT NULL CHECK (avg_rating BETWEEN 1 AND 10),
		ticket_price DOUBLE PRECISION NOT NULL CHECK (ticket_price >= 0),
		"cast"       VARCHAR(200) NOT NULL,
		created_by   UUID         NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		created_at   TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (lower(email))`,
	`CREATE INDEX IF NOT EXISTS idx_movies_created_by ON movies (created_by)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_created_at ON movies (created_at, id)`,
}

// CreateSchema creates the tables if they do not exist yet
func CreateSchema(ctx context.Context, db PgxIface) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	return tx.Commit(ctx)
}
