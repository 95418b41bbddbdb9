package disaster

// coverCity removes every column the option containing index touches (the
// supplied city itself plus each of its neighbors) from the active ring,
// hiding every other row through those columns, and returns the name of
// the city this option supplies. Ported from DisasterLinks::coverCity;
// unlike pokemon/matching's coverType the walk follows the row's own
// left/right ring rather than a spacer-up wraparound.
func (n *Network) coverCity(index int) string {
	name := ""
	cur := index
	for {
		top := n.cells[cur].topOrLen
		if top < 0 {
			name = n.items[absInt(top)].Name
		} else {
			it := n.items[top]
			n.items[it.Left].Right = it.Right
			n.items[it.Right].Left = it.Left
			n.hideRows(top, cur)
		}
		cur = n.cells[cur].right
		if cur == index {
			break
		}
	}
	return name
}

// uncoverCity reverses a prior coverCity call exactly, restoring the
// columns it removed in the opposite order. Ported from
// DisasterLinks::uncoverCity.
func (n *Network) uncoverCity(index int) {
	cur := n.cells[index].left
	for {
		top := n.cells[cur].topOrLen
		if top > 0 {
			it := n.items[top]
			n.items[it.Left].Right = top
			n.items[it.Right].Left = top
			n.unhideRows(top, cur)
		}
		if cur == index {
			break
		}
		cur = n.cells[cur].left
	}
}

// hideRows splices every row touching column (except skip) out of each of
// its other columns, the same splice dlx.HideOptions performs, adapted to
// walk a row's explicit left/right ring instead of the spacer-up
// wraparound trick pokemon/matching rely on.
func (n *Network) hideRows(column, skip int) {
	for i := n.cells[column].down; i != column; i = n.cells[i].down {
		if i == skip {
			continue
		}
		for j := n.cells[i].right; j != i; j = n.cells[j].right {
			if n.cells[j].topOrLen <= 0 {
				continue
			}
			cur := n.cells[j]
			n.cells[cur.up].down = cur.down
			n.cells[cur.down].up = cur.up
			n.cells[cur.topOrLen].topOrLen--
		}
	}
}

// unhideRows reverses a prior hideRows call.
func (n *Network) unhideRows(column, skip int) {
	for i := n.cells[column].up; i != column; i = n.cells[i].up {
		if i == skip {
			continue
		}
		for j := n.cells[i].left; j != i; j = n.cells[j].left {
			if n.cells[j].topOrLen <= 0 {
				continue
			}
			cur := n.cells[j]
			n.cells[cur.up].down = j
			n.cells[cur.down].up = j
			n.cells[cur.topOrLen].topOrLen++
		}
	}
}
