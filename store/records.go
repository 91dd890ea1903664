// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/juju/clock"

	"github.com/danielhkuo/ballotcheck/models"
)

// Records is the durable record table.
type Records struct {
	db    *sql.DB
	clock clock.Clock
}

// NewRecords returns a store backed by db. A nil clock means wall time.
func NewRecords(db *sql.DB, clk clock.Clock) *Records {
	if clk == nil {
		clk = clock.WallClock
	}
	return &Records{db: db, clock: clk}
}

// Append persists rec and returns the new record id.
// Duplicate transaction ids are allowed.
func (s *Records) Append(ctx context.Context, rec models.NewRecord) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, fmt.Errorf("invalid record: %w", err)
	}

	var voterKey sql.NullString
	if rec.VoterKey != "" {
		voterKey = sql.NullString{String: rec.VoterKey, Valid: true}
	}

	// Postgres keeps microseconds; truncate so both backends agree.
	createdAt := s.clock.Now().UTC().Truncate(time.Microsecond)

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO voter_records (user_id, region, transaction_id, voter_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, rec.OwnerID, string(rec.Region), rec.TransactionID, voterKey, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	return id, nil
}

// ListByOwner returns the owner's records in insertion order.
func (s *Records) ListByOwner(ctx context.Context, ownerID int64) ([]models.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, region, transaction_id, voter_key, created_at
		FROM voter_records
		WHERE user_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var rec models.Record
		var region string
		var voterKey sql.NullString
		var createdAt timestamp

		if err := rows.Scan(
			&rec.ID,
			&rec.OwnerID,
			&region,
			&rec.TransactionID,
			&voterKey,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		rec.Region, err = models.ParseRegion(region)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		rec.VoterKey = voterKey.String
		rec.CreatedAt = createdAt.Time

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// CountByOwner returns how many records the owner has.
func (s *Records) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM voter_records WHERE user_id = $1
	`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// DeleteByID removes a record. Deleting a missing id is not an error.
func (s *Records) DeleteByID(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM voter_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, err)
	}
	return nil
}
