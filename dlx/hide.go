package dlx

// HideOptions removes every other row that shares a column with the row
// containing indexInOption, splicing each of those rows' other cells out of
// their columns and decrementing the affected columns' remaining-row counts.
// Shared by every solver whose options are laid out as contiguous,
// spacer-delimited runs of cells (pokemon and matching both use this shape;
// disaster's horizontal option ring covers differently and does not call
// this). Ported from PokemonLinks::hideOptions, which PartnerLinks mirrors
// exactly for its own two-cell rows.
func HideOptions[P any](m *Matrix[P], indexInOption int) {
	for i := m.Cells[indexInOption].Down; i != indexInOption; i = m.Cells[i].Down {
		if i == m.Cells[indexInOption].TopOrLen {
			continue
		}
		for j := i + 1; j != i; {
			top := m.Cells[j].TopOrLen
			if top <= 0 {
				j = m.Cells[j].Up
			} else {
				cur := m.Cells[j]
				m.Cells[cur.Up].Down = cur.Down
				m.Cells[cur.Down].Up = cur.Up
				m.Cells[top].TopOrLen--
				j++
			}
		}
	}
}

// UnhideOptions reverses a prior HideOptions call, restoring every row it
// hid in the opposite order. Ported from PokemonLinks::unhideOptions.
func UnhideOptions[P any](m *Matrix[P], indexInOption int) {
	for i := m.Cells[indexInOption].Up; i != indexInOption; i = m.Cells[i].Up {
		if i == m.Cells[indexInOption].TopOrLen {
			continue
		}
		for j := i - 1; j != i; {
			top := m.Cells[j].TopOrLen
			if top <= 0 {
				j = m.Cells[j].Down
			} else {
				cur := m.Cells[j]
				m.Cells[cur.Up].Down = j
				m.Cells[cur.Down].Up = j
				m.Cells[top].TopOrLen++
				j--
			}
		}
	}
}
