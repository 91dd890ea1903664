// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case TypePostgres:
		schema = postgresSchema
	case TypeSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Only the id column differs between dialects. Queries in package store
// use $N placeholders, which both drivers accept.

const postgresSchema = `
CREATE TABLE IF NOT EXISTS voter_records (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    region TEXT NOT NULL CHECK (region IN ('moscow', 'other')),
    transaction_id TEXT NOT NULL,
    voter_key TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_voter_records_user_id ON voter_records(user_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS voter_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    region TEXT NOT NULL CHECK (region IN ('moscow', 'other')),
    transaction_id TEXT NOT NULL,
    voter_key TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_voter_records_user_id ON voter_records(user_id);
`
