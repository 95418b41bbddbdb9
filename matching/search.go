package matching

import "github.com/agl-alexglopez/dancing-links-sub001/dlx"

// HasPerfectLinks reports whether every person can be paired off
// simultaneously, returning one such pairing if so. Ported from
// PartnerLinks::hasPerfectLinks.
func (n *Network) HasPerfectLinks() (bool, []Pair) {
	var pairs []Pair
	ok := n.fillPerfectLinks(&pairs)
	if !ok {
		return false, nil
	}
	return true, pairs
}

func (n *Network) fillPerfectLinks(pairs *[]Pair) bool {
	if n.m.Exhausted() {
		return true
	}
	item := dlx.ChooseItem(n.m)
	if item == dlx.DeadBranch {
		return false
	}
	person := n.m.Items[item].Name
	for cur := n.m.Cells[item].Down; cur != item; cur = n.m.Cells[cur].Down {
		partner := n.coverPair(cur)
		*pairs = append(*pairs, NewPair(person, partner))
		if n.fillPerfectLinks(pairs) {
			return true
		}
		*pairs = (*pairs)[:len(*pairs)-1]
		n.uncoverPair(cur)
	}
	return false
}

// AllPerfectLinks returns every way to pair off every person simultaneously.
// Ported from PartnerLinks::getAllPerfectLinks.
func (n *Network) AllPerfectLinks() [][]Pair {
	var out [][]Pair
	var current []Pair
	n.fillAllPerfectLinks(&out, &current)
	return out
}

func (n *Network) fillAllPerfectLinks(out *[][]Pair, current *[]Pair) {
	if n.m.Exhausted() {
		snapshot := make([]Pair, len(*current))
		copy(snapshot, *current)
		*out = append(*out, snapshot)
		return
	}
	item := dlx.ChooseItem(n.m)
	if item == dlx.DeadBranch {
		return
	}
	person := n.m.Items[item].Name
	for cur := n.m.Cells[item].Down; cur != item; cur = n.m.Cells[cur].Down {
		partner := n.coverPair(cur)
		*current = append(*current, NewPair(person, partner))
		n.fillAllPerfectLinks(out, current)
		*current = (*current)[:len(*current)-1]
		n.uncoverPair(cur)
	}
}

// MaxWeightMatching returns a pairing maximizing total edge weight without
// requiring every person to be paired, along with that total. At each
// person still unpaired, the search tries leaving them out entirely as well
// as every possible partner, keeping whichever branch the recursion
// ultimately reports the heaviest. Ported from
// PartnerLinks::getMaxWeightMatching; unlike hasPerfectLinks/getAllPerfectLinks
// an exhausted active-column ring is not required to accept a candidate, so
// a person with no remaining partner simply goes unmatched rather than
// failing the whole branch.
func (n *Network) MaxWeightMatching() ([]Pair, int) {
	var best []Pair
	bestWeight := 0
	var current []Pair
	n.fillMaxWeightMatching(&current, 0, &best, &bestWeight)
	return best, bestWeight
}

func (n *Network) fillMaxWeightMatching(current *[]Pair, weight int, best *[]Pair, bestWeight *int) {
	if !n.m.Exhausted() {
		if item := dlx.ChooseItem(n.m); item != dlx.DeadBranch {
			person := n.m.Items[item].Name

			n.removePerson(item)
			n.fillMaxWeightMatching(current, weight, best, bestWeight)
			n.restorePerson(item)

			for cur := n.m.Cells[item].Down; cur != item; cur = n.m.Cells[cur].Down {
				w := n.pairWeight(cur)
				partner := n.coverPair(cur)
				*current = append(*current, NewPair(person, partner))
				n.fillMaxWeightMatching(current, weight+w, best, bestWeight)
				*current = (*current)[:len(*current)-1]
				n.uncoverPair(cur)
			}
			return
		}
	}
	if weight > *bestWeight {
		*bestWeight = weight
		snapshot := make([]Pair, len(*current))
		copy(snapshot, *current)
		*best = snapshot
	}
}

// removePerson splices item out of the active-column ring and hides every
// row through item's column from its other end, the "leave this person
// unmatched" branch getMaxWeightMatching needs but hasPerfectLinks/
// getAllPerfectLinks never take. Hiding those rows too (not just the item
// itself) is required: otherwise a later choice could still "pair" someone
// with the very person this branch just declared unmatched, double-counting
// that person's weight against a branch that excluded them.
func (n *Network) removePerson(item int) {
	cur := n.m.Items[item]
	n.m.Items[cur.Left].Right = cur.Right
	n.m.Items[cur.Right].Left = cur.Left
	for i := n.m.Cells[item].Down; i != item; i = n.m.Cells[i].Down {
		n.hidePersonRow(i)
	}
}

// restorePerson reverses a prior removePerson call, unhiding item's rows in
// the opposite order they were hidden.
func (n *Network) restorePerson(item int) {
	cur := n.m.Items[item]
	n.m.Items[cur.Left].Right = item
	n.m.Items[cur.Right].Left = item
	for i := n.m.Cells[item].Up; i != item; i = n.m.Cells[i].Up {
		n.unhidePersonRow(i)
	}
}
