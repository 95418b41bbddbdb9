package dlx

import "math"

// SentinelSpacer marks the final spacer cell at the end of the cell array,
// mirroring the INT_MIN terminator of the original array-based
// implementation this package is ported from.
const SentinelSpacer = math.MinInt32

// Item is one entry of the item table (H in the spec): either the sentinel
// at index 0 or a named column. Left/Right form the doubly linked ring of
// currently active (uncovered) columns; an item spliced out of this ring by
// Cover still keeps its Cell entry intact so Uncover can restore it.
type Item struct {
	Name  string
	Left  int
	Right int
}

// Cell is one entry of the flat links array (L in the spec). For a column
// header cell (index 1..M, mirroring Items[1..M]) TopOrLen holds the live
// row count of that column. For an option cell TopOrLen holds the column
// index it belongs to. For a spacer cell TopOrLen holds the negated option
// id, usable as an O(1) index into Options; the final spacer instead holds
// SentinelSpacer. Payload carries whatever a specific solver's cover
// strategy needs beyond the shared up/down vertical ring.
type Cell[P any] struct {
	TopOrLen int
	Up       int
	Down     int
	Payload  P
}

// Matrix is the shared toroidal structure. Items mirrors the column headers
// (index 0 is the sentinel bracketing the active-column ring). Cells is the
// full flat array: Cells[1..len(Items)-1] are the column headers themselves
// (their Up/Down form each column's vertical ring), followed by alternating
// spacer and option cells. Options[0] is a sentinel; Options[1..N] are the
// human-readable option names, looked up via the absolute value of a
// spacer's TopOrLen.
type Matrix[P any] struct {
	Items   []Item
	Cells   []Cell[P]
	Options []string
}

// NumItems reports the number of item columns (excluding the sentinel).
func (m *Matrix[P]) NumItems() int {
	return len(m.Items) - 1
}

// NumOptions reports the number of options (excluding the sentinel).
func (m *Matrix[P]) NumOptions() int {
	return len(m.Options) - 1
}

// Exhausted reports whether every item has been covered, i.e. the
// active-column ring is empty. This is the success termination spec §4.1
// describes ("choose_item only when the ring is non-empty").
func (m *Matrix[P]) Exhausted() bool {
	return m.Items[0].Right == 0
}
