package store

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/ballotcheck/models"
	"github.com/danielhkuo/ballotcheck/testutil"
)

func newTestRecords(t *testing.T) (*Records, *testclock.Clock) {
	t.Helper()
	clk := testclock.NewClock(testutil.Epoch)
	return NewRecords(testutil.SetupTestDB(t), clk), clk
}

func TestAppendThenList(t *testing.T) {
	ctx := context.Background()
	records, clk := newTestRecords(t)

	_, err := records.Append(ctx, models.NewRecord{OwnerID: 1, Region: models.RegionMoscow, TransactionID: "TX0"})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	id, err := records.Append(ctx, models.NewRecord{
		OwnerID:       1,
		Region:        models.RegionOther,
		TransactionID: "TX1",
		VoterKey:      "K1",
	})
	require.NoError(t, err)

	list, err := records.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)

	last := list[len(list)-1]
	assert.Equal(t, id, last.ID)
	assert.Equal(t, int64(1), last.OwnerID)
	assert.Equal(t, models.RegionOther, last.Region)
	assert.Equal(t, "TX1", last.TransactionID)
	assert.Equal(t, "K1", last.VoterKey)
	assert.True(t, last.CreatedAt.Equal(testutil.Epoch.Add(time.Hour)), "created_at = %v", last.CreatedAt)

	assert.Equal(t, "TX0", list[0].TransactionID)
	assert.Empty(t, list[0].VoterKey)
}

func TestListByOwnerIsScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	records, _ := newTestRecords(t)

	for _, tx := range []string{"A", "B", "C"} {
		_, err := records.Append(ctx, models.NewRecord{OwnerID: 7, Region: models.RegionMoscow, TransactionID: tx})
		require.NoError(t, err)
		_, err = records.Append(ctx, models.NewRecord{OwnerID: 8, Region: models.RegionMoscow, TransactionID: "other-" + tx})
		require.NoError(t, err)
	}

	list, err := records.ListByOwner(ctx, 7)
	require.NoError(t, err)

	var got []string
	for _, rec := range list {
		got = append(got, rec.TransactionID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)

	empty, err := records.ListByOwner(ctx, 9)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCountByOwner(t *testing.T) {
	ctx := context.Background()
	records, _ := newTestRecords(t)

	n, err := records.CountByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for i := 0; i < 3; i++ {
		_, err := records.Append(ctx, models.NewRecord{OwnerID: 1, Region: models.RegionMoscow, TransactionID: "dup"})
		require.NoError(t, err)
	}

	n, err = records.CountByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "duplicate transaction ids are kept")
}

func TestDeleteByIDIsIdempotent(t *testing.T) {
	ctx := context.Background()
	records, _ := newTestRecords(t)

	keep, err := records.Append(ctx, models.NewRecord{OwnerID: 1, Region: models.RegionMoscow, TransactionID: "keep"})
	require.NoError(t, err)
	drop, err := records.Append(ctx, models.NewRecord{OwnerID: 1, Region: models.RegionMoscow, TransactionID: "drop"})
	require.NoError(t, err)

	require.NoError(t, records.DeleteByID(ctx, drop))
	require.NoError(t, records.DeleteByID(ctx, drop))
	require.NoError(t, records.DeleteByID(ctx, 999999))

	list, err := records.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep, list[0].ID)
}

func TestAppendRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	records, _ := newTestRecords(t)

	tests := []struct {
		name string
		rec  models.NewRecord
	}{
		{"unknown region", models.NewRecord{OwnerID: 1, Region: "mars", TransactionID: "TX"}},
		{"missing transaction id", models.NewRecord{OwnerID: 1, Region: models.RegionMoscow}},
		{"other without voter key", models.NewRecord{OwnerID: 1, Region: models.RegionOther, TransactionID: "TX"}},
		{"moscow with voter key", models.NewRecord{OwnerID: 1, Region: models.RegionMoscow, TransactionID: "TX", VoterKey: "K"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := records.Append(ctx, tt.rec)
			assert.Error(t, err)
		})
	}

	n, err := records.CountByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	conn := testutil.SetupTestDB(t)
	records := NewRecords(conn, nil)
	conn.Close()

	_, err := records.Append(ctx, models.NewRecord{OwnerID: 1, Region: models.RegionMoscow, TransactionID: "TX"})
	assert.Error(t, err)
	_, err = records.ListByOwner(ctx, 1)
	assert.Error(t, err)
	_, err = records.CountByOwner(ctx, 1)
	assert.Error(t, err)
	assert.Error(t, records.DeleteByID(ctx, 1))
}

func TestTimestampScan(t *testing.T) {
	want := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		src  any
	}{
		{"time", want},
		{"sqlite text", "2024-03-15 12:00:00+00:00"},
		{"rfc3339 bytes", []byte("2024-03-15T12:00:00Z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts timestamp
			require.NoError(t, ts.Scan(tt.src))
			assert.True(t, ts.Time.Equal(want), "got %v", ts.Time)
		})
	}

	var ts timestamp
	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("yesterday"))
}
