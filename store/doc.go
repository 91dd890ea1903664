// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists verification records.

Records wraps a *sql.DB and exposes the four operations the conversation
engine needs:

	records := store.NewRecords(conn, nil)

	id, err := records.Append(ctx, models.NewRecord{...})
	list, err := records.ListByOwner(ctx, ownerID)
	n, err := records.CountByOwner(ctx, ownerID)
	err = records.DeleteByID(ctx, id)

Each operation is a single statement, so a failure leaves nothing half
written. DeleteByID on an id that no longer exists succeeds. There is no
uniqueness constraint on transaction ids.

The clock passed to NewRecords stamps created_at; tests pass a testclock.
*/
package store
