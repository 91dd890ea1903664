// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

import (
	"github.com/looplab/fsm"

	"github.com/danielhkuo/ballotcheck/models"
)

// scratch is the data gathered by the flow in progress.
type scratch struct {
	region        models.Region
	transactionID string
	voterKey      string

	worklist      *Worklist
	pendingDelete int // display index chosen for deletion
}

// Session is one user's conversation. It is not safe for concurrent use;
// Sessions serializes access per owner.
type Session struct {
	OwnerID int64

	fsm     *fsm.FSM
	scratch scratch
}

// NewSession returns a session resting at the menu.
func NewSession(ownerID int64) *Session {
	return &Session{
		OwnerID: ownerID,
		fsm:     fsm.NewFSM(string(StateMenu), transitions, nil),
	}
}

// State returns the current state.
func (s *Session) State() State {
	return State(s.fsm.Current())
}

// Region returns the region chosen so far, if any.
func (s *Session) Region() models.Region {
	return s.scratch.region
}

// reset clears every scratch field.
func (s *Session) reset() {
	s.scratch = scratch{}
}

// pending builds the record that confirmation would append.
func (s *Session) pending() models.NewRecord {
	return models.NewRecord{
		OwnerID:       s.OwnerID,
		Region:        s.scratch.region,
		TransactionID: s.scratch.transactionID,
		VoterKey:      s.scratch.voterKey,
	}
}
