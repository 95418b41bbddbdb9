package dlx

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Dump writes a human-readable rendering of the item table and cell array
// to w, in the spirit of the original implementation's debug operator<<
// overloads (PokemonLinks/DisasterLinks/PartnerLinks each print their
// lookup table then their DLX array, starting a new line at every cell
// whose TopOrLen is zero or negative: the spacers, plus any header of an
// empty column). Item table entries print in cyan when fatih/color has
// color enabled, which it decides from standard output (not from w) being
// a terminal; otherwise Dump writes plain text.
func (m *Matrix[P]) Dump(w io.Writer) {
	name := color.New(color.FgCyan)
	spacer := color.New(color.FgYellow)

	fmt.Fprintln(w, "item table:")
	for i, it := range m.Items {
		name.Fprintf(w, "{%q,%d,%d}", it.Name, it.Left, it.Right)
		if i != len(m.Items)-1 {
			fmt.Fprint(w, ", ")
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "cell array:")
	for _, c := range m.Cells {
		if c.TopOrLen <= 0 {
			spacer.Fprintln(w)
		}
		fmt.Fprintf(w, "{%d,%d,%d}", c.TopOrLen, c.Up, c.Down)
	}
	fmt.Fprintln(w)
}
