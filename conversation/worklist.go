// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

import "github.com/danielhkuo/ballotcheck/models"

// Worklist numbers a snapshot of the owner's records from 1 so the user
// can pick one by a short index. It is never refreshed from the store.
type Worklist struct {
	entries []models.Record
}

// NewWorklist snapshots records in the order given.
func NewWorklist(records []models.Record) *Worklist {
	entries := make([]models.Record, len(records))
	copy(entries, records)
	return &Worklist{entries: entries}
}

// Len returns the number of entries.
func (w *Worklist) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// Get returns the record shown at display index n.
func (w *Worklist) Get(n int) (models.Record, bool) {
	if w == nil || n < 1 || n > len(w.entries) {
		return models.Record{}, false
	}
	return w.entries[n-1], true
}

// Indexes returns the display indexes in order.
func (w *Worklist) Indexes() []int {
	out := make([]int, w.Len())
	for i := range out {
		out[i] = i + 1
	}
	return out
}
