// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

import "github.com/looplab/fsm"

// State is the step a session is currently at.
type State string

// Session states
const (
	StateMenu                      State = "menu"
	StateListed                    State = "listed"
	StateAwaitingRemovalChoice     State = "awaiting_removal_choice"
	StateConfirmRemoval            State = "confirm_removal"
	StateRegion                    State = "region"
	StateAwaitingSubmission        State = "awaiting_submission"
	StateAwaitingTxIDMoscow        State = "awaiting_tx_id_moscow"
	StateAwaitingTxIDOther         State = "awaiting_tx_id_other"
	StateAwaitingVoterKey          State = "awaiting_voter_key"
	StateConfirmSubmissionResponse State = "confirm_submission_response"
)

// AllStates lists every state in transition order.
var AllStates = []State{
	StateMenu,
	StateListed,
	StateAwaitingRemovalChoice,
	StateConfirmRemoval,
	StateRegion,
	StateAwaitingSubmission,
	StateAwaitingTxIDMoscow,
	StateAwaitingTxIDOther,
	StateAwaitingVoterKey,
	StateConfirmSubmissionResponse,
}

// Event names. Events whose source and destination are equal never move
// the session; they are listed so that Can reports them as legal.
const (
	evCancel = "cancel"

	evStartRecord = "start_record"
	evListRecords = "list_records"

	evKeepRecords   = "keep_records"
	evChooseRemoval = "choose_removal"

	evRemovalBack   = "removal_back"
	evSelectRemoval = "select_removal"

	evRejectRemoval  = "reject_removal"
	evConfirmRemoval = "confirm_removal"

	evPickRegion  = "pick_region"
	evLeaveRegion = "leave_region"

	evReadyMoscow = "ready_moscow"
	evReadyOther  = "ready_other"
	evMoreInfo    = "more_info"

	evMoscowTxID = "moscow_tx_id"
	evOtherTxID  = "other_tx_id"
	evVoterKey   = "voter_key"

	evConfirmSubmission = "confirm_submission"
	evRejectSubmission  = "reject_submission"
	evRetryConfirmation = "retry_confirmation"
)

func src(states ...State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

// transitions is the complete table of legal moves.
var transitions = fsm.Events{
	{Name: evCancel, Src: src(AllStates...), Dst: string(StateMenu)},

	{Name: evStartRecord, Src: src(StateMenu), Dst: string(StateRegion)},
	{Name: evListRecords, Src: src(StateMenu), Dst: string(StateListed)},

	{Name: evKeepRecords, Src: src(StateListed), Dst: string(StateMenu)},
	{Name: evChooseRemoval, Src: src(StateListed), Dst: string(StateAwaitingRemovalChoice)},

	{Name: evRemovalBack, Src: src(StateAwaitingRemovalChoice), Dst: string(StateMenu)},
	{Name: evSelectRemoval, Src: src(StateAwaitingRemovalChoice), Dst: string(StateConfirmRemoval)},

	{Name: evRejectRemoval, Src: src(StateConfirmRemoval), Dst: string(StateAwaitingRemovalChoice)},
	{Name: evConfirmRemoval, Src: src(StateConfirmRemoval), Dst: string(StateMenu)},

	{Name: evPickRegion, Src: src(StateRegion), Dst: string(StateAwaitingSubmission)},
	{Name: evLeaveRegion, Src: src(StateRegion), Dst: string(StateMenu)},

	{Name: evReadyMoscow, Src: src(StateAwaitingSubmission), Dst: string(StateAwaitingTxIDMoscow)},
	{Name: evReadyOther, Src: src(StateAwaitingSubmission), Dst: string(StateAwaitingTxIDOther)},
	{Name: evMoreInfo, Src: src(StateAwaitingSubmission), Dst: string(StateAwaitingSubmission)},

	{Name: evMoscowTxID, Src: src(StateAwaitingTxIDMoscow), Dst: string(StateConfirmSubmissionResponse)},
	{Name: evOtherTxID, Src: src(StateAwaitingTxIDOther), Dst: string(StateAwaitingVoterKey)},
	{Name: evVoterKey, Src: src(StateAwaitingVoterKey), Dst: string(StateConfirmSubmissionResponse)},

	{Name: evConfirmSubmission, Src: src(StateConfirmSubmissionResponse), Dst: string(StateMenu)},
	{Name: evRejectSubmission, Src: src(StateConfirmSubmissionResponse), Dst: string(StateMenu)},
	{Name: evRetryConfirmation, Src: src(StateConfirmSubmissionResponse), Dst: string(StateConfirmSubmissionResponse)},
}
