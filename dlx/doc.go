// Package dlx implements the toroidal four-way-linked matrix that underlies
// Knuth's Dancing Links technique (Algorithm X): a column/item table forming
// a doubly linked ring of active constraints, and a flat cell array holding
// column headers, spacer rows and option cells, linked vertically by
// up/down and indexed directly rather than through a pointer graph.
//
// Matrix is generic over a per-solver cell payload so that a solver whose
// rows fit this package's spacer-delimited shape can attach whatever extra
// bookkeeping its cover strategy needs onto the same underlying array:
// Pokémon attaches a resistance multiplier and depth tag, matching attaches
// nothing (an edge's weight lives in its row's spacer cell instead). The
// disaster solver's options cover several columns at once and need their
// own horizontal left/right ring per row, a shape this package's
// contiguous-run layout can't express, so disaster keeps its own cell type
// and does not instantiate Matrix at all. Cover/uncover mechanics
// themselves live in each solver's package, since the solvers walk option
// rows differently; the matrix layout, the minimum-remaining-values item
// chooser and the HideOptions/UnhideOptions row splice that pokemon and
// matching both call are shared here.
package dlx
