// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

import (
	"context"
	"sync"

	"github.com/im7mortal/kmutex"
)

// Sessions holds one Session per owner and runs each owner's inputs one at
// a time. Different owners proceed in parallel. Sessions live until the
// process exits.
type Sessions struct {
	machine *Machine
	locks   *kmutex.Kmutex

	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessions returns an empty registry driven by machine.
func NewSessions(machine *Machine) *Sessions {
	return &Sessions{
		machine:  machine,
		locks:    kmutex.New(),
		sessions: make(map[int64]*Session),
	}
}

// Handle runs in against the owner's session, creating it on first use.
// It blocks while another input for the same owner is in progress.
func (r *Sessions) Handle(ctx context.Context, ownerID int64, in Input) (Reply, error) {
	r.locks.Lock(ownerID)
	defer r.locks.Unlock(ownerID)

	return r.machine.Handle(ctx, r.get(ownerID), in)
}

// State reports the owner's current state, or StateMenu for unknown owners.
func (r *Sessions) State(ownerID int64) State {
	r.locks.Lock(ownerID)
	defer r.locks.Unlock(ownerID)

	r.mu.Lock()
	s, ok := r.sessions[ownerID]
	r.mu.Unlock()
	if !ok {
		return StateMenu
	}
	return s.State()
}

// Len returns the number of sessions created so far.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Sessions) get(ownerID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[ownerID]
	if !ok {
		s = NewSession(ownerID)
		r.sessions[ownerID] = s
	}
	return s
}
