// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

import "strings"

// InputKind classifies inbound events.
type InputKind int

// Input kinds
const (
	InputCommand InputKind = iota + 1 // Data is the command name without the slash
	InputButton                       // Data is the pressed option's Data
	InputText                         // Data is the message text
)

func (k InputKind) String() string {
	switch k {
	case InputCommand:
		return "command"
	case InputButton:
		return "button"
	case InputText:
		return "text"
	}
	return "unknown"
}

// Input is one inbound event for a session.
type Input struct {
	Kind InputKind
	Data string
}

// Command builds a command input.
func Command(name string) Input { return Input{Kind: InputCommand, Data: name} }

// Button builds a button press input.
func Button(data string) Input { return Input{Kind: InputButton, Data: data} }

// Text builds a free-text input.
func Text(text string) Input { return Input{Kind: InputText, Data: text} }

// Commands that reset the session to the menu from any state.
var resetCommands = map[string]bool{
	"start":  true,
	"menu":   true,
	"cancel": true,
}

// Button payloads
const (
	dataAddRecord   = "add_tx_for_verification"
	dataListRecords = "list_tx_for_verification"
	dataRemove      = "remove_tx"
	dataMenu        = "menu"
	dataBack        = "back"
	dataDeletePfx   = "delete_"
	dataYes         = "yes"
	dataNo          = "no"
	dataMoscow      = "moscow"
	dataOther       = "other"
	dataBackToMenu  = "back_to_menu"
	dataReadyMoscow = "send_sid_moscow"
	dataReadyOther  = "send_id_key_other"
	dataMoreInfo    = "more_info"
	dataCorrect     = "correct"
	dataIncorrect   = "incorrect"
)

// route maps an input to an event. An empty pattern matches any payload;
// a trailing "*" matches by prefix.
type route struct {
	kind    InputKind
	pattern string
	event   string
}

func (r route) matches(in Input) bool {
	if in.Kind != r.kind {
		return false
	}
	switch {
	case r.pattern == "":
		return true
	case strings.HasSuffix(r.pattern, "*"):
		return strings.HasPrefix(in.Data, strings.TrimSuffix(r.pattern, "*"))
	}
	return in.Data == r.pattern
}

// routes lists, per state, the inputs that state accepts. Order matters.
var routes = map[State][]route{
	StateMenu: {
		{InputButton, dataAddRecord, evStartRecord},
		{InputButton, dataListRecords, evListRecords},
	},
	StateListed: {
		{InputButton, dataRemove, evChooseRemoval},
		{InputButton, dataMenu, evKeepRecords},
	},
	StateAwaitingRemovalChoice: {
		{InputButton, dataBack, evRemovalBack},
		{InputButton, dataDeletePfx + "*", evSelectRemoval},
	},
	StateConfirmRemoval: {
		{InputButton, dataYes, evConfirmRemoval},
		{InputButton, dataNo, evRejectRemoval},
	},
	StateRegion: {
		{InputButton, dataMoscow, evPickRegion},
		{InputButton, dataOther, evPickRegion},
		{InputButton, dataBackToMenu, evLeaveRegion},
	},
	StateAwaitingSubmission: {
		{InputButton, dataReadyMoscow, evReadyMoscow},
		{InputButton, dataReadyOther, evReadyOther},
		{InputButton, dataMoreInfo, evMoreInfo},
	},
	StateAwaitingTxIDMoscow: {
		{InputText, "", evMoscowTxID},
	},
	StateAwaitingTxIDOther: {
		{InputText, "", evOtherTxID},
	},
	StateAwaitingVoterKey: {
		{InputText, "", evVoterKey},
	},
	StateConfirmSubmissionResponse: {
		{InputButton, dataCorrect, evConfirmSubmission},
		{InputButton, dataIncorrect, evRejectSubmission},
		{InputButton, "", evRetryConfirmation},
		{InputText, "", evRetryConfirmation},
	},
}

// lookup returns the event for in while in state, if any.
func lookup(state State, in Input) (string, bool) {
	if in.Kind == InputCommand && resetCommands[in.Data] {
		return evCancel, true
	}
	for _, r := range routes[state] {
		if r.matches(in) {
			return r.event, true
		}
	}
	return "", false
}
