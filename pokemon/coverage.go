package pokemon

import (
	"sort"

	"github.com/agl-alexglopez/dancing-links-sub001/dlx"
	"github.com/agl-alexglopez/dancing-links-sub001/rankedset"
)

func (l *Links) depthLimit() int {
	if l.kind == Attack {
		return l.maxAttackSlots
	}
	return l.maxTeamSize
}

// ExactTypeCoverage returns every minimal type coverage — no member's
// contribution is redundant — ordered by ascending rank, the sum of the
// members' multipliers (for Defense, lower multipliers are stronger
// resistances, so the strongest aggregate resistance comes first), ported
// from PokemonLinks::getExactCoverages.
func (l *Links) ExactTypeCoverage() []rankedset.RankedSet[string] {
	out := map[string]rankedset.RankedSet[string]{}
	coverage := rankedset.New[string]()
	l.fillExactCoverages(out, &coverage, l.depthLimit())
	return sortedRankedSets(out)
}

func (l *Links) fillExactCoverages(out map[string]rankedset.RankedSet[string], coverage *rankedset.RankedSet[string], depthLimit int) {
	if l.m.Exhausted() {
		clone := coverage.Clone()
		out[clone.Key()] = clone
		return
	}
	if depthLimit <= 0 {
		return
	}
	item := dlx.ChooseItem(l.m)
	if item == dlx.DeadBranch {
		return
	}
	for cur := l.m.Cells[item].Down; cur != item; cur = l.m.Cells[cur].Down {
		rank, name := l.coverType(cur)
		coverage.Insert(rank, name)
		l.fillExactCoverages(out, coverage, depthLimit-1)
		coverage.Remove(rank, name)
		l.uncoverType(cur)
	}
}

// OverlappingTypeCoverage returns type coverages allowing redundant members
// — useful when DEFENSE/ATTACK has no exact cover, or the caller simply
// wants every option ranked. Search stops once maxOutputSize distinct
// coverages have been collected; ReachedOutputLimit then reports true.
// Ported from PokemonLinks::getOverlappingCoverages.
func (l *Links) OverlappingTypeCoverage() []rankedset.RankedSet[string] {
	out := map[string]rankedset.RankedSet[string]{}
	coverage := rankedset.New[string]()
	l.fillOverlappingCoverages(out, &coverage, l.depthLimit())
	if len(out) >= l.maxOutputSize {
		l.hitLimit = true
	}
	return sortedRankedSets(out)
}

func (l *Links) fillOverlappingCoverages(out map[string]rankedset.RankedSet[string], coverage *rankedset.RankedSet[string], depthTag int) {
	if l.m.Exhausted() {
		clone := coverage.Clone()
		out[clone.Key()] = clone
		return
	}
	if depthTag <= 0 {
		return
	}
	item := dlx.ChooseItem(l.m)
	if item == dlx.DeadBranch {
		return
	}
	for cur := l.m.Cells[item].Down; cur != item; cur = l.m.Cells[cur].Down {
		rank, name := l.looseCoverType(cur, depthTag)
		coverage.Insert(rank, name)
		l.fillOverlappingCoverages(out, coverage, depthTag-1)
		if len(out) == l.maxOutputSize {
			coverage.Remove(rank, name)
			l.looseUncoverType(cur)
			return
		}
		coverage.Remove(rank, name)
		l.looseUncoverType(cur)
	}
}

// ReachedOutputLimit reports whether the most recent OverlappingTypeCoverage
// call stopped early because it hit maxOutputSize rather than exhausting
// the search.
func (l *Links) ReachedOutputLimit() bool {
	return l.hitLimit
}

func sortedRankedSets(out map[string]rankedset.RankedSet[string]) []rankedset.RankedSet[string] {
	sets := make([]rankedset.RankedSet[string], 0, len(out))
	for _, s := range out {
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Less(sets[j]) })
	return sets
}
