// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/danielhkuo/ballotcheck/cliparse"
	"github.com/danielhkuo/ballotcheck/db"
	"github.com/danielhkuo/ballotcheck/models"
)

// TestDBURL is an in-memory SQLite database private to one connection
const TestDBURL = ":memory:"

// Epoch is the fixed start time used by test clocks
var Epoch = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		BotToken:          "test-token",
		DatabaseURL:       TestDBURL,
		DatabaseType:      db.TypeSQLite,
		MaxRecordsPerUser: 3,
		LogSalt:           "test-log-salt",
	}
}

// InsertTestRecord writes a record directly, bypassing the store
func InsertTestRecord(t *testing.T, conn *sql.DB, rec models.NewRecord) int64 {
	t.Helper()

	var voterKey *string
	if rec.VoterKey != "" {
		voterKey = &rec.VoterKey
	}

	var id int64
	err := conn.QueryRow(`
		INSERT INTO voter_records (user_id, region, transaction_id, voter_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, rec.OwnerID, string(rec.Region), rec.TransactionID, voterKey, Epoch).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test record: %v", err)
	}

	return id
}

// CountTestRecords counts rows for an owner directly
func CountTestRecords(t *testing.T, conn *sql.DB, ownerID int64) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM voter_records WHERE user_id = $1`, ownerID).Scan(&n); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	return n
}
