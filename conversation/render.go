// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ballotcheck/models"
)

// render builds the prompt for the session's current state.
func (m *Machine) render(s *Session) (Reply, error) {
	switch s.State() {
	case StateMenu:
		return menuReply(), nil

	case StateListed:
		return m.listReply(s.scratch.worklist), nil

	case StateAwaitingRemovalChoice:
		return removalChoiceReply(s.scratch.worklist), nil

	case StateConfirmRemoval:
		n := s.scratch.pendingDelete
		rec, ok := s.scratch.worklist.Get(n)
		if !ok {
			return Reply{}, invariantf("no worklist entry %d to confirm", n)
		}
		return Reply{
			Text: textConfirmDelete + "\n" + m.formatRecord(rec, n) + "\n" + textAreYouSure,
			Options: [][]Option{{
				{Label: labelYes, Data: dataYes},
				{Label: labelNoBack, Data: dataNo},
			}},
		}, nil

	case StateRegion:
		return Reply{
			Text: textChooseRegion,
			Options: [][]Option{
				{{Label: labelMoscow, Data: dataMoscow}},
				{{Label: labelOther, Data: dataOther}},
				{{Label: labelBackToMenu, Data: dataBackToMenu}},
			},
		}, nil

	case StateAwaitingSubmission:
		switch s.scratch.region {
		case models.RegionMoscow:
			return Reply{
				Text: textMoscowInstructions,
				Options: [][]Option{
					{{Label: labelReadyMoscow, Data: dataReadyMoscow}},
					{{Label: labelMoreInfo, Data: dataMoreInfo}},
				},
			}, nil
		case models.RegionOther:
			return Reply{
				Text: textOtherInstructions,
				Options: [][]Option{
					{{Label: labelReadyOther, Data: dataReadyOther}},
					{{Label: labelMoreInfo, Data: dataMoreInfo}},
				},
			}, nil
		}
		return Reply{}, invariantf("awaiting submission with region %q", s.scratch.region)

	case StateAwaitingTxIDMoscow:
		return Reply{Text: textMoscowTxID}, nil

	case StateAwaitingTxIDOther:
		return Reply{Text: textOtherTxID}, nil

	case StateAwaitingVoterKey:
		return Reply{Text: textVoterKey}, nil

	case StateConfirmSubmissionResponse:
		return confirmationReply(s.pending())
	}

	return Reply{}, invariantf("no prompt for state %q", s.State())
}

func menuReply() Reply {
	return Reply{
		Text: textMenu,
		Options: [][]Option{{
			{Label: labelAddRecord, Data: dataAddRecord},
			{Label: labelListRecords, Data: dataListRecords},
		}},
	}
}

func (m *Machine) listReply(w *Worklist) Reply {
	var b strings.Builder
	fmt.Fprintf(&b, textListHeader+"\n\n", w.Len())
	for _, n := range w.Indexes() {
		rec, _ := w.Get(n)
		b.WriteString(m.formatRecord(rec, n))
		b.WriteString("\n")
	}
	b.WriteString(textListAsk)

	return Reply{
		Text: b.String(),
		Options: [][]Option{
			{{Label: labelYes, Data: dataRemove}},
			{{Label: labelNoMenu, Data: dataMenu}},
		},
	}
}

func removalChoiceReply(w *Worklist) Reply {
	options := make([]Option, 0, w.Len())
	for _, n := range w.Indexes() {
		options = append(options, Option{
			Label: strconv.Itoa(n),
			Data:  dataDeletePfx + strconv.Itoa(n),
		})
	}
	return Reply{
		Text:    textChooseRemoval,
		Options: Grid(options, RowWidth, Option{Label: labelGoBack, Data: dataBack}),
	}
}

func confirmationReply(rec models.NewRecord) (Reply, error) {
	var b strings.Builder
	b.WriteString(textConfirmHeader + "\n")
	fmt.Fprintf(&b, "Region: %s\n", regionName(rec.Region))
	fmt.Fprintf(&b, "Transaction ID: %s\n", rec.TransactionID)
	switch rec.Region {
	case models.RegionOther:
		fmt.Fprintf(&b, "Voter key: %s\n", rec.VoterKey)
	case models.RegionMoscow:
	default:
		return Reply{}, invariantf("confirming record with region %q", rec.Region)
	}
	b.WriteString("\n" + textIsCorrect)

	return Reply{
		Text: b.String(),
		Options: [][]Option{{
			{Label: labelCorrect, Data: dataCorrect},
			{Label: labelNoMenu, Data: dataIncorrect},
		}},
	}, nil
}

// formatRecord renders one worklist entry.
func (m *Machine) formatRecord(rec models.Record, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transaction #%d:\n", n)
	fmt.Fprintf(&b, "Region: %s\n", regionName(rec.Region))
	fmt.Fprintf(&b, "Transaction ID: %s\n", rec.TransactionID)
	if rec.Region.RequiresVoterKey() {
		fmt.Fprintf(&b, "Voter key: %s\n", rec.VoterKey)
	}
	if !rec.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Added: %s\n", m.since(rec.CreatedAt))
	}
	return b.String()
}

func (m *Machine) since(t time.Time) string {
	return humanize.RelTime(t, m.clock.Now(), "ago", "from now")
}

func regionName(r models.Region) string {
	switch r {
	case models.RegionMoscow:
		return labelMoscow
	case models.RegionOther:
		return labelOther
	}
	return string(r)
}

func regionDetails(r models.Region) (string, error) {
	switch r {
	case models.RegionMoscow:
		return textMoscowDetails, nil
	case models.RegionOther:
		return textOtherDetails, nil
	}
	return "", invariantf("no details for region %q", r)
}
