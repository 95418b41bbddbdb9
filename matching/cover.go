package matching

import "github.com/agl-alexglopez/dancing-links-sub001/dlx"

// coverPair removes both columns touched by the pair row containing
// indexInOption and reports the name of the other person in that pair (the
// column reached is not indexInOption's own). Ported from
// PartnerLinks::coverPairing; unlike pokemon's coverType, a pair row always
// touches exactly two columns, so there is nothing to rank.
func (n *Network) coverPair(indexInOption int) (partner string) {
	i := indexInOption
	for {
		top := n.m.Cells[i].TopOrLen
		if top <= 0 {
			i = n.m.Cells[i].Up
		} else {
			if i != indexInOption {
				partner = n.m.Items[top].Name
			}
			cur := n.m.Items[top]
			n.m.Items[cur.Left].Right = cur.Right
			n.m.Items[cur.Right].Left = cur.Left
			dlx.HideOptions(n.m, i)
			i++
		}
		if i == indexInOption {
			break
		}
	}
	return partner
}

// uncoverPair reverses a prior coverPair call exactly, restoring the two
// columns it removed in the opposite order. Ported from
// PartnerLinks::uncoverPairing.
func (n *Network) uncoverPair(indexInOption int) {
	target := indexInOption - 1
	i := target
	for {
		top := n.m.Cells[i].TopOrLen
		if top <= 0 {
			i = n.m.Cells[i].Down
		} else {
			cur := n.m.Items[top]
			n.m.Items[cur.Left].Right = top
			n.m.Items[cur.Right].Left = top
			dlx.UnhideOptions(n.m, i)
			i--
		}
		if i == target {
			break
		}
	}
}

// pairWeight recovers the weight encoded in the row containing indexInOption
// via the same spacer-up wraparound trick buildLinks uses at construction
// time. Unweighted networks treat every edge as weight 1 regardless of the
// row index the spacer actually stores.
func (n *Network) pairWeight(indexInOption int) int {
	if !n.isWeighted {
		return 1
	}
	i := indexInOption
	weight := 0
	for {
		top := n.m.Cells[i].TopOrLen
		if top <= 0 {
			i = n.m.Cells[i].Up
			weight = absInt(n.m.Cells[i-1].TopOrLen)
		} else {
			i++
		}
		if i == indexInOption {
			break
		}
	}
	return weight
}

// hidePersonRow splices the other end of the pair row containing
// indexInOption out of its own column, leaving indexInOption's column
// untouched. Used by removePerson: every row through a person left
// unmatched must stop being a usable option for whoever is on its other
// end, without disturbing the removed person's own column (removePerson
// only takes that person out of the active item ring; its column ring
// must still read exactly as it did before, for restorePerson to reverse).
func (n *Network) hidePersonRow(indexInOption int) {
	i := indexInOption
	for {
		top := n.m.Cells[i].TopOrLen
		if top <= 0 {
			i = n.m.Cells[i].Up
		} else {
			if i != indexInOption {
				cur := n.m.Cells[i]
				n.m.Cells[cur.Up].Down = cur.Down
				n.m.Cells[cur.Down].Up = cur.Up
				n.m.Cells[top].TopOrLen--
			}
			i++
		}
		if i == indexInOption {
			break
		}
	}
}

// unhidePersonRow reverses a prior hidePersonRow call.
func (n *Network) unhidePersonRow(indexInOption int) {
	target := indexInOption - 1
	i := target
	for {
		top := n.m.Cells[i].TopOrLen
		if top <= 0 {
			i = n.m.Cells[i].Down
		} else {
			if i != indexInOption {
				cur := n.m.Cells[i]
				n.m.Cells[cur.Up].Down = i
				n.m.Cells[cur.Down].Up = i
				n.m.Cells[top].TopOrLen++
			}
			i--
		}
		if i == target {
			break
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
