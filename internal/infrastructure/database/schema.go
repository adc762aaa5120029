package database

import (
	"context"
	"fmt"
)

// schemaStatements are idempotent. Name uniqueness and the author reference are
// enforced here as the last line of defence behind the service-level checks.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age  INTEGER NOT NULL,
		CONSTRAINT authors_name_key UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id               SERIAL PRIMARY KEY,
		author_id        INTEGER NOT NULL REFERENCES authors (id),
		name             TEXT NOT NULL,
		genre            TEXT NOT NULL,
		publisher        TEXT NOT NULL,
		publication_date DATE NOT NULL,
		CONSTRAINT books_name_key UNIQUE (name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
}

// EnsureSchema creates the catalog tables when they are missing
func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
