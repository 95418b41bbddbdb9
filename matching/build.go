package matching

import (
	"sort"

	"github.com/agl-alexglopez/dancing-links-sub001/dlx"
)

// buildLinks lays out one spacer-delimited, two-cell option row per
// distinct pair in adjacency (visiting person < neighbor in sorted order so
// each unordered pair is only emitted once), mirroring PartnerLinks's
// construction routine. For an unweighted network the spacer stores the
// negated row index, the same convention pokemon/disaster use to recover an
// option's identity later; for a weighted network the spacer stores the
// negated edge weight directly, since getMaxWeightMatching only ever needs
// the weight, never a name lookup, so there is nothing to recover a row
// index for.
func buildLinks(adjacency map[string]map[string]int, weighted bool) ([]dlx.Item, []dlx.Cell[struct{}], bool) {
	keys := sortedPeople(adjacency)

	items := []dlx.Item{{Name: "", Left: 0, Right: 1}}
	cells := []dlx.Cell[struct{}]{{}}
	columnBuilder := map[string]int{}
	index := 1
	hasSingleton := false
	for _, p := range keys {
		columnBuilder[p] = index
		items = append(items, dlx.Item{Name: p, Left: index - 1, Right: index + 1})
		items[0].Left++
		cells = append(cells, dlx.Cell[struct{}]{TopOrLen: 0, Up: index, Down: index})
		if len(adjacency[p]) == 0 {
			hasSingleton = true
		}
		index++
	}
	items[len(items)-1].Right = 0

	// Every option is a pair, so the spacer-up wraparound trick always
	// threads through a row width of exactly two, even before any row
	// exists.
	const pairWidth = 2
	previousSetSize := pairWidth
	currentLinksIndex := len(cells)
	rowIndex := 1

	for _, person := range keys {
		for _, neighbor := range sortedNeighbors(adjacency[person]) {
			if neighbor <= person {
				continue
			}
			weight := adjacency[person][neighbor]
			spacerTop := -rowIndex
			if weighted {
				spacerTop = -weight
			}
			spacerIdx := currentLinksIndex
			cells = append(cells, dlx.Cell[struct{}]{
				TopOrLen: spacerTop,
				Up:       currentLinksIndex - previousSetSize,
				Down:     currentLinksIndex,
			})

			for _, who := range [2]string{person, neighbor} {
				currentLinksIndex++
				cells[spacerIdx].Down++

				ptr := columnBuilder[who]
				oldTail := cells[ptr].Down
				cells[oldTail].TopOrLen++

				cells = append(cells, dlx.Cell[struct{}]{
					TopOrLen: oldTail,
					Up:       currentLinksIndex,
					Down:     currentLinksIndex,
				})
				cells[oldTail].Up = currentLinksIndex
				cells[currentLinksIndex].Up = ptr
				cells[currentLinksIndex].Down = cells[ptr].Down
				cells[ptr].Down = currentLinksIndex
				columnBuilder[who] = currentLinksIndex
			}

			rowIndex++
			currentLinksIndex++
			previousSetSize = pairWidth
		}
	}

	cells = append(cells, dlx.Cell[struct{}]{
		TopOrLen: dlx.SentinelSpacer,
		Up:       currentLinksIndex - previousSetSize,
		Down:     dlx.SentinelSpacer,
	})

	return items, cells, hasSingleton
}

func sortedPeople(adjacency map[string]map[string]int) []string {
	keys := make([]string, 0, len(adjacency))
	for k := range adjacency {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedNeighbors(neighbors map[string]int) []string {
	keys := make([]string, 0, len(neighbors))
	for k := range neighbors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
