// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/juju/clock"
	"github.com/looplab/fsm"

	"github.com/danielhkuo/ballotcheck/models"
)

// ErrInvariant marks inputs that correct transport filtering never
// delivers. They abort the transition without changing the session.
var ErrInvariant = errors.New("conversation invariant violated")

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// Store is the record persistence the machine needs.
type Store interface {
	Append(ctx context.Context, rec models.NewRecord) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Record, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	DeleteByID(ctx context.Context, id int64) error
}

// outcome is what a handler decided.
type outcome struct {
	notice string // shown above the next prompt
	stay   bool   // skip the transition
}

type handler func(ctx context.Context, s *Session, in Input) (outcome, error)

// Machine drives sessions through the transition table.
type Machine struct {
	store      Store
	maxRecords int
	clock      clock.Clock

	handlers map[string]handler
}

// NewMachine returns a machine that caps owners at maxRecords records.
// maxRecords <= 0 disables the cap. A nil clock means wall time.
func NewMachine(store Store, maxRecords int, clk clock.Clock) *Machine {
	if clk == nil {
		clk = clock.WallClock
	}
	m := &Machine{store: store, maxRecords: maxRecords, clock: clk}
	m.handlers = map[string]handler{
		evCancel: m.cancel,

		evStartRecord: m.startRecord,
		evListRecords: m.listRecords,

		evKeepRecords:   m.cancel,
		evChooseRemoval: m.chooseRemoval,

		evRemovalBack:   m.cancel,
		evSelectRemoval: m.selectRemoval,

		evRejectRemoval:  m.rejectRemoval,
		evConfirmRemoval: m.confirmRemoval,

		evPickRegion:  m.pickRegion,
		evLeaveRegion: m.cancel,

		evReadyMoscow: m.ready(models.RegionMoscow),
		evReadyOther:  m.ready(models.RegionOther),
		evMoreInfo:    m.moreInfo,

		evMoscowTxID: m.transactionID,
		evOtherTxID:  m.transactionID,
		evVoterKey:   m.voterKey,

		evConfirmSubmission: m.confirmSubmission,
		evRejectSubmission:  m.rejectSubmission,
		evRetryConfirmation: m.retryConfirmation,
	}
	return m
}

// Handle processes one input and returns the reply to show. On error the
// session is left as it was and the reply is a generic failure notice.
func (m *Machine) Handle(ctx context.Context, s *Session, in Input) (Reply, error) {
	from := s.State()

	event, ok := lookup(from, in)
	if !ok {
		if in.Kind == InputButton {
			return failureReply(), invariantf("button %q not accepted in state %s", in.Data, from)
		}
		// Stray text or an unknown command: show the current step again.
		slog.Debug("input ignored", "state", from, "kind", in.Kind)
		return m.present(s, in, outcome{})
	}

	if !s.fsm.Can(event) {
		return failureReply(), invariantf("event %s not legal in state %s", event, from)
	}

	h, ok := m.handlers[event]
	if !ok {
		return failureReply(), invariantf("no handler for event %s", event)
	}

	out, err := h(ctx, s, in)
	if err != nil {
		return failureReply(), fmt.Errorf("%s in state %s: %w", event, from, err)
	}

	if !out.stay {
		if err := s.fsm.Event(ctx, event); err != nil {
			var same fsm.NoTransitionError
			if !errors.As(err, &same) {
				return failureReply(), fmt.Errorf("transition %s from %s: %w", event, from, err)
			}
		}
	}

	if s.State() == StateMenu {
		s.reset()
	}

	slog.Debug("input handled", "event", event, "from", from, "to", s.State(), "stay", out.stay)

	return m.present(s, in, out)
}

// present renders the current state's prompt with out's notice above it.
func (m *Machine) present(s *Session, in Input, out outcome) (Reply, error) {
	reply, err := m.render(s)
	if err != nil {
		return failureReply(), err
	}
	if out.notice != "" {
		reply.Text = out.notice + "\n\n" + reply.Text
	}
	reply.Edit = in.Kind == InputButton
	return reply, nil
}

func failureReply() Reply {
	return Reply{Text: textFailure}
}

func (m *Machine) cancel(ctx context.Context, s *Session, in Input) (outcome, error) {
	return outcome{}, nil
}

func (m *Machine) startRecord(ctx context.Context, s *Session, in Input) (outcome, error) {
	if m.maxRecords > 0 {
		n, err := m.store.CountByOwner(ctx, s.OwnerID)
		if err != nil {
			return outcome{}, err
		}
		if n >= m.maxRecords {
			return outcome{notice: fmt.Sprintf(textLimitReached, n), stay: true}, nil
		}
	}
	s.reset()
	return outcome{}, nil
}

func (m *Machine) listRecords(ctx context.Context, s *Session, in Input) (outcome, error) {
	records, err := m.store.ListByOwner(ctx, s.OwnerID)
	if err != nil {
		return outcome{}, err
	}
	if len(records) == 0 {
		return outcome{notice: textNoRecords, stay: true}, nil
	}
	s.scratch.worklist = NewWorklist(records)
	return outcome{}, nil
}

func (m *Machine) chooseRemoval(ctx context.Context, s *Session, in Input) (outcome, error) {
	if s.scratch.worklist.Len() == 0 {
		return outcome{}, invariantf("removal requested without a worklist")
	}
	return outcome{}, nil
}

func (m *Machine) selectRemoval(ctx context.Context, s *Session, in Input) (outcome, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(in.Data, dataDeletePfx))
	if err != nil {
		return outcome{}, invariantf("malformed removal choice %q", in.Data)
	}
	if _, ok := s.scratch.worklist.Get(n); !ok {
		return outcome{}, invariantf("removal index %d not in worklist of %d", n, s.scratch.worklist.Len())
	}
	s.scratch.pendingDelete = n
	return outcome{}, nil
}

func (m *Machine) rejectRemoval(ctx context.Context, s *Session, in Input) (outcome, error) {
	s.scratch.pendingDelete = 0
	return outcome{}, nil
}

func (m *Machine) confirmRemoval(ctx context.Context, s *Session, in Input) (outcome, error) {
	n := s.scratch.pendingDelete
	rec, ok := s.scratch.worklist.Get(n)
	if !ok {
		return outcome{}, invariantf("confirmed removal of index %d not in worklist", n)
	}
	if err := m.store.DeleteByID(ctx, rec.ID); err != nil {
		return outcome{}, err
	}
	slog.Info("record removed", "record_id", rec.ID, "region", rec.Region)
	return outcome{notice: fmt.Sprintf(textDeleted, n)}, nil
}

func (m *Machine) pickRegion(ctx context.Context, s *Session, in Input) (outcome, error) {
	region, err := models.ParseRegion(in.Data)
	if err != nil {
		return outcome{}, invariantf("%v", err)
	}
	s.scratch.region = region
	return outcome{}, nil
}

func (m *Machine) ready(want models.Region) handler {
	return func(ctx context.Context, s *Session, in Input) (outcome, error) {
		if s.scratch.region != want {
			return outcome{}, invariantf("ready for %s with region %q", want, s.scratch.region)
		}
		return outcome{}, nil
	}
}

func (m *Machine) moreInfo(ctx context.Context, s *Session, in Input) (outcome, error) {
	details, err := regionDetails(s.scratch.region)
	if err != nil {
		return outcome{}, err
	}
	return outcome{notice: details, stay: true}, nil
}

func (m *Machine) transactionID(ctx context.Context, s *Session, in Input) (outcome, error) {
	text := strings.TrimSpace(in.Data)
	if text == "" {
		return outcome{notice: textBlankTxID, stay: true}, nil
	}
	s.scratch.transactionID = text
	return outcome{}, nil
}

func (m *Machine) voterKey(ctx context.Context, s *Session, in Input) (outcome, error) {
	text := strings.TrimSpace(in.Data)
	if text == "" {
		return outcome{notice: textBlankVoterKey, stay: true}, nil
	}
	s.scratch.voterKey = text
	return outcome{}, nil
}

func (m *Machine) confirmSubmission(ctx context.Context, s *Session, in Input) (outcome, error) {
	rec := s.pending()
	if err := rec.Validate(); err != nil {
		return outcome{}, invariantf("confirming incomplete record: %v", err)
	}
	id, err := m.store.Append(ctx, rec)
	if err != nil {
		return outcome{}, err
	}
	slog.Info("record saved", "record_id", id, "region", rec.Region)
	return outcome{notice: textSaved}, nil
}

func (m *Machine) rejectSubmission(ctx context.Context, s *Session, in Input) (outcome, error) {
	return outcome{notice: textRejected}, nil
}

func (m *Machine) retryConfirmation(ctx context.Context, s *Session, in Input) (outcome, error) {
	return outcome{notice: textRetry, stay: true}, nil
}
