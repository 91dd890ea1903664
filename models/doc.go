// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared by the store, the
conversation engine and the transport.

# Regions

Two voting systems are supported:

  - RegionMoscow: the Moscow system; records hold a transaction id only
  - RegionOther: the federal system used elsewhere; records also hold the
    public voter key

Code that branches on a region must handle both values and treat anything
else as a programming error:

	switch rec.Region {
	case models.RegionMoscow:
		// ...
	case models.RegionOther:
		// ...
	default:
		return fmt.Errorf("unexpected region %q", rec.Region)
	}

# Records

Record is the persisted form. NewRecord is what the conversation hands to
the store on confirmation; NewRecord.Validate enforces the voter key rule
before anything is written.

Records are write-once. There is no update type.
*/
package models
