package dlx

import "math"

// DeadBranch is the sentinel ChooseItem returns when some active column has
// no remaining rows: the current partial solution cannot be extended and
// the caller should backtrack immediately (spec §4.1).
const DeadBranch = -1

// ChooseItem scans the active-column ring and returns the column with the
// fewest remaining option rows (the minimum-remaining-values heuristic),
// breaking ties by encounter order. It returns DeadBranch the instant it
// finds an active column with zero rows, since no option can cover that
// item anymore. Callers must only invoke ChooseItem when the active ring is
// non-empty (check Exhausted first); an already-empty ring returns 0, which
// callers must not mistake for a real column index.
func ChooseItem[P any](m *Matrix[P]) int {
	min := math.MaxInt
	chosen := 0
	for cur := m.Items[0].Right; cur != 0; cur = m.Items[cur].Right {
		length := m.Cells[cur].TopOrLen
		if length <= 0 {
			return DeadBranch
		}
		if length < min {
			chosen = cur
			min = length
		}
	}
	return chosen
}
