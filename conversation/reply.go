// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

// RowWidth is the number of list options laid out per row.
const RowWidth = 3

// Option is a selectable button.
type Option struct {
	Label string
	Data  string
}

// Reply is the single presentation produced for one input.
type Reply struct {
	Text    string
	Options [][]Option

	// Edit asks the transport to replace the message whose button was
	// pressed rather than send a new one.
	Edit bool
}

// Grid lays options out in rows of width, followed by a row holding back.
func Grid(options []Option, width int, back Option) [][]Option {
	if width < 1 {
		width = 1
	}
	rows := make([][]Option, 0, len(options)/width+2)
	for start := 0; start < len(options); start += width {
		end := min(start+width, len(options))
		row := make([]Option, end-start)
		copy(row, options[start:end])
		rows = append(rows, row)
	}
	return append(rows, []Option{back})
}
