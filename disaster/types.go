package disaster

import "github.com/agl-alexglopez/dancing-links-sub001/dlx"

// cell is one entry of the flat links array, ported from
// DisasterLinks::cityItem. Unlike dlx.Cell, every row here also carries an
// explicit left/right ring: a supply option can cover several columns at
// once (the city plus each neighbor), and covering one column must only
// hide *other* rows through it, not walk back out to a spacer the way
// pokemon/matching's single-spacer-per-row layout does.
type cell struct {
	topOrLen    int
	up, down    int
	left, right int
}

// Network is a Dancing Links matrix over supply options: column j is a
// city that needs a supply within one hop, and the option rooted at city X
// covers X's own column plus every neighbor's column.
type Network struct {
	items []dlx.Item
	cells []cell
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
