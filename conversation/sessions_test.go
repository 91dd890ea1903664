package conversation

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/ballotcheck/store"
	"github.com/danielhkuo/ballotcheck/testutil"
)

// TestConcurrentOwners runs complete submissions for many owners at once
// and checks each ends up with exactly its own record.
func TestConcurrentOwners(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	records := store.NewRecords(conn, nil)
	sessions := NewSessions(NewMachine(records, 10, nil))

	const owners = 10
	var wg sync.WaitGroup
	errs := make(chan error, owners*len(submitOther))

	for i := 0; i < owners; i++ {
		wg.Add(1)
		go func(owner int64) {
			defer wg.Done()
			for _, in := range append(append([]Input{}, submitOther...), Button(dataCorrect)) {
				if _, err := sessions.Handle(context.Background(), owner, in); err != nil {
					errs <- err
					return
				}
			}
		}(int64(i + 1))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	assert.Equal(t, owners, sessions.Len())
	for i := 1; i <= owners; i++ {
		assert.Equal(t, StateMenu, sessions.State(int64(i)))
		assert.Equal(t, 1, testutil.CountTestRecords(t, conn, int64(i)), "owner %d", i)
	}
}

// TestSameOwnerSerialized fires the same owner's inputs concurrently; each
// one must see a complete previous transition.
func TestSameOwnerSerialized(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	sessions := NewSessions(NewMachine(store.NewRecords(conn, nil), 0, nil))

	const presses = 20
	var wg sync.WaitGroup
	for i := 0; i < presses; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Alternating add/back keeps every input legal in some state;
			// the ones that land in the wrong state fail as invariants.
			_, _ = sessions.Handle(context.Background(), testOwner, Button(dataAddRecord))
			_, _ = sessions.Handle(context.Background(), testOwner, Button(dataBackToMenu))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, sessions.Len())
	state := sessions.State(testOwner)
	assert.Contains(t, []State{StateMenu, StateRegion}, state)
}

func TestSessionsStateForUnknownOwner(t *testing.T) {
	sessions := NewSessions(NewMachine(nil, 0, nil))
	assert.Equal(t, StateMenu, sessions.State(42))
	assert.Equal(t, 0, sessions.Len())

	reply, err := sessions.Handle(context.Background(), 42, Text("hello"))
	require.NoError(t, err)
	assert.Equal(t, textMenu, reply.Text)
	assert.Equal(t, 1, sessions.Len())
}
