// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package conversation implements the per-user dialog for recording and
removing verification records.

# Sessions

Each user has one Session holding the current State and the scratch data
of the flow in progress. Sessions are created lazily by Sessions, which
also serializes inputs per user:

	machine := conversation.NewMachine(records, cfg.MaxRecordsPerUser, nil)
	sessions := conversation.NewSessions(machine)

	reply, err := sessions.Handle(ctx, userID, conversation.Button("list_tx_for_verification"))

Scratch data is cleared every time a session returns to StateMenu.

# Transition Table

Legal moves are declared once as a looplab/fsm event table:

	menu → region                          start record (or stay: limit reached)
	menu → listed                          list records (or stay: none)
	listed → menu | awaiting_removal_choice
	awaiting_removal_choice → menu | confirm_removal
	confirm_removal → awaiting_removal_choice | menu (record deleted)
	region → awaiting_submission | menu
	awaiting_submission → awaiting_tx_id_moscow | awaiting_tx_id_other
	awaiting_tx_id_moscow → confirm_submission_response
	awaiting_tx_id_other → awaiting_voter_key → confirm_submission_response
	confirm_submission_response → menu (saved or discarded)

/start, /menu and /cancel return to the menu from any state.

A routing table maps (state, input) to an event. The event's handler runs
first and may touch the store; only if it succeeds does the FSM move, so a
failed store call leaves the session where it was.

# Inputs and Replies

Inputs are commands, button presses (carrying the Option.Data that was
shown), or free text. Every input produces exactly one Reply: a text body
and an optional grid of options. Lists of options are laid out by Grid in
rows of RowWidth with a back row last.

# Errors

Free text where a button is expected, an empty transaction id or voter key,
and unknown answers to the confirmation prompt re-render the current step.
Button data a state does not accept, and choices that do not resolve (a
removal index missing from the worklist, "ready" with no region), return an
error wrapping ErrInvariant. Store errors are returned wrapped. In both
cases the reply is a generic failure notice and the session is unchanged.
*/
package conversation
