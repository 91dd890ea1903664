// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"time"
)

// Region identifies which electronic voting system a record belongs to.
type Region string

// Region constants
const (
	RegionMoscow Region = "moscow"
	RegionOther  Region = "other"
)

// Valid reports whether r is one of the known regions.
func (r Region) Valid() bool {
	switch r {
	case RegionMoscow, RegionOther:
		return true
	}
	return false
}

// RequiresVoterKey reports whether records for r carry a voter key.
func (r Region) RequiresVoterKey() bool {
	return r == RegionOther
}

// ParseRegion converts stored or callback text into a Region.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown region %q", s)
	}
	return r, nil
}

// Record is a committed verification claim owned by one user.
type Record struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"-"` // Never expose in JSON
	Region        Region    `json:"region"`
	TransactionID string    `json:"transaction_id"`
	VoterKey      string    `json:"voter_key,omitempty"` // Only for RegionOther
	CreatedAt     time.Time `json:"created_at"`
}

// NewRecord is the data needed to append a record.
type NewRecord struct {
	OwnerID       int64
	Region        Region
	TransactionID string
	VoterKey      string
}

// Validate checks the fields that must hold before a record is persisted.
func (n NewRecord) Validate() error {
	if !n.Region.Valid() {
		return fmt.Errorf("invalid region %q", n.Region)
	}
	if n.TransactionID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if n.Region.RequiresVoterKey() && n.VoterKey == "" {
		return fmt.Errorf("voter key is required for region %s", n.Region)
	}
	if !n.Region.RequiresVoterKey() && n.VoterKey != "" {
		return fmt.Errorf("voter key is not allowed for region %s", n.Region)
	}
	return nil
}

// Stats is served by the health listener.
type Stats struct {
	ActiveSessions int `json:"active_sessions"`
}
