package disaster

import (
	"sort"

	"github.com/agl-alexglopez/dancing-links-sub001/dlx"
)

// buildNetwork lays out one option row per city: a leading spacer encoding
// the negated item index of that city (so coverCity can recover its name),
// followed by a cell for the city itself and one cell per neighbor, each
// spliced into its column's vertical ring with the same tail-insertion
// trick buildLinks/initializeColumns use elsewhere in this module. All
// cells of a row, spacer included, are also threaded into one circular
// left/right ring so coverCity/uncoverCity can walk an entire option
// without needing a wraparound trick to find its own spacer.
func buildNetwork(cities map[string]map[string]struct{}) ([]dlx.Item, []cell) {
	keys := sortedKeys(cities)

	items := []dlx.Item{{Name: "", Left: 0, Right: 1}}
	cells := []cell{{}}
	columnBuilder := map[string]int{}
	index := 1
	for _, c := range keys {
		columnBuilder[c] = index
		items = append(items, dlx.Item{Name: c, Left: index - 1, Right: index + 1})
		items[0].Left++
		cells = append(cells, cell{topOrLen: 0, up: index, down: index})
		index++
	}
	items[len(items)-1].Right = 0

	for itemIndex, c := range keys {
		rowCities := append([]string{c}, sortedNeighborSet(cities[c])...)

		spacerIdx := len(cells)
		cells = append(cells, cell{topOrLen: -(itemIndex + 1)})

		rowStart := len(cells)
		for _, rc := range rowCities {
			ptr := columnBuilder[rc]
			oldTail := cells[ptr].down
			cells[oldTail].topOrLen++

			newIdx := len(cells)
			cells = append(cells, cell{
				topOrLen: oldTail,
				up:       newIdx,
				down:     newIdx,
			})
			cells[oldTail].up = newIdx
			cells[newIdx].up = ptr
			cells[newIdx].down = cells[ptr].down
			cells[ptr].down = newIdx
			columnBuilder[rc] = newIdx
		}
		rowEnd := len(cells) - 1

		cells[spacerIdx].left = rowEnd
		cells[spacerIdx].right = rowStart
		cells[rowEnd].right = spacerIdx
		for i := rowStart; i <= rowEnd; i++ {
			if i > rowStart {
				cells[i].left = i - 1
			} else {
				cells[i].left = spacerIdx
			}
			if i < rowEnd {
				cells[i].right = i + 1
			}
		}
	}

	return items, cells
}

func sortedKeys(cities map[string]map[string]struct{}) []string {
	keys := make([]string, 0, len(cities))
	for k := range cities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedNeighborSet(neighbors map[string]struct{}) []string {
	keys := make([]string, 0, len(neighbors))
	for k := range neighbors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
