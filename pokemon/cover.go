package pokemon

import "github.com/agl-alexglopez/dancing-links-sub001/dlx"

// coverType removes every column the option containing indexInOption
// touches, accumulating the sum of their multipliers as the option's rank
// and returning the name of the option itself. Ported from
// PokemonLinks::coverType; the name lookup exploits the same spacer-up
// wraparound used at construction time to recover the row's leading spacer
// without a trailing one.
func (l *Links) coverType(indexInOption int) (rank int, name string) {
	i := indexInOption
	for {
		top := l.m.Cells[i].TopOrLen
		if top <= 0 {
			i = l.m.Cells[i].Up
			name = l.optionTable[absInt(l.m.Cells[i-1].TopOrLen)]
		} else {
			cur := l.m.Items[top]
			l.m.Items[cur.Left].Right = cur.Right
			l.m.Items[cur.Right].Left = cur.Left
			dlx.HideOptions(l.m, i)
			rank += int(l.m.Cells[i].Payload.Multiplier)
			i++
		}
		if i == indexInOption {
			break
		}
	}
	return rank, name
}

// uncoverType reverses a prior coverType call exactly, restoring the
// columns it removed in the opposite order. Ported from
// PokemonLinks::uncoverType.
func (l *Links) uncoverType(indexInOption int) {
	target := indexInOption - 1
	i := target
	for {
		top := l.m.Cells[i].TopOrLen
		if top <= 0 {
			i = l.m.Cells[i].Down
		} else {
			cur := l.m.Items[top]
			l.m.Items[cur.Left].Right = top
			l.m.Items[cur.Right].Left = top
			dlx.UnhideOptions(l.m, i)
			i--
		}
		if i == target {
			break
		}
	}
}

// looseCoverType is coverType's overlap-permitting counterpart: a column is
// spliced out of the item ring, tagged with depthTag and counted toward the
// rank only if no earlier row on this branch has already tagged it, and no
// other row is hidden, so later rows may still use it. Ported from
// PokemonLinks::looseCoverType.
func (l *Links) looseCoverType(indexInOption, depthTag int) (rank int, name string) {
	i := indexInOption
	for {
		top := l.m.Cells[i].TopOrLen
		if top <= 0 {
			i = l.m.Cells[i].Up
			name = l.optionTable[absInt(l.m.Cells[i-1].TopOrLen)]
		} else {
			if l.m.Cells[top].Payload.DepthTag == 0 {
				l.m.Cells[top].Payload.DepthTag = depthTag
				it := l.m.Items[top]
				l.m.Items[it.Left].Right = it.Right
				l.m.Items[it.Right].Left = it.Left
				rank += int(l.m.Cells[i].Payload.Multiplier)
			}
			l.m.Cells[i].Payload.DepthTag = depthTag
			i++
		}
		if i == indexInOption {
			break
		}
	}
	return rank, name
}

// looseUncoverType reverses a prior looseCoverType call, restoring a column
// only if depthTag is the same depth that last dimmed it. Ported from
// PokemonLinks::looseUncoverType.
func (l *Links) looseUncoverType(indexInOption int) {
	target := indexInOption - 1
	i := target
	for {
		top := l.m.Cells[i].TopOrLen
		if top <= 0 {
			i = l.m.Cells[i].Down
		} else {
			if l.m.Cells[top].Payload.DepthTag == l.m.Cells[i].Payload.DepthTag {
				l.m.Cells[top].Payload.DepthTag = 0
				it := l.m.Items[top]
				l.m.Items[it.Left].Right = top
				l.m.Items[it.Right].Left = top
			}
			l.m.Cells[i].Payload.DepthTag = 0
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
