package disaster

import (
	"math"
	"sort"
	"strings"
)

// chooseCity scans the active column ring and returns the column (city)
// with the fewest remaining supply options, the same minimum-remaining-
// values heuristic dlx.ChooseItem uses. Every city always has at least one
// option (itself), so unlike dlx.ChooseItem there is no dead-branch
// sentinel to report.
func (n *Network) chooseCity() int {
	min := math.MaxInt
	chosen := 0
	for cur := n.items[0].Right; cur != 0; cur = n.items[cur].Right {
		length := n.cells[cur].topOrLen
		if length < min {
			chosen = cur
			min = length
		}
	}
	return chosen
}

// exhausted reports whether every city is within reach of a chosen supply.
func (n *Network) exhausted() bool {
	return n.items[0].Right == 0
}

// IsDisasterReady reports whether at most limit supply cities suffice to
// cover every city in the network, returning one such configuration if so.
// Ported from DisasterLinks::isDisasterReady.
func (n *Network) IsDisasterReady(limit int) (bool, []string) {
	var chosen []string
	if !n.fillDisasterReady(limit, &chosen) {
		return false, nil
	}
	return true, chosen
}

func (n *Network) fillDisasterReady(limit int, chosen *[]string) bool {
	if n.exhausted() {
		return true
	}
	if limit <= 0 {
		return false
	}
	city := n.chooseCity()
	for opt := n.cells[city].down; opt != city; opt = n.cells[opt].down {
		supplied := n.coverCity(opt)
		*chosen = append(*chosen, supplied)
		if n.fillDisasterReady(limit-1, chosen) {
			return true
		}
		*chosen = (*chosen)[:len(*chosen)-1]
		n.uncoverCity(opt)
	}
	return false
}

// AllConfigurations returns the distinct sets of at most limit supply
// cities that IsDisasterReady's search reaches when it keeps going after
// each success, deduplicated regardless of the order cities were chosen
// in. A set is recorded as soon as every city is reached and is not
// extended further, so not every covering set is listed: on the triangle
// A-C-B with limit 2 it reports {C} but not {B, C}. Ported from
// DisasterLinks::getAllDisasterConfigurations.
func (n *Network) AllConfigurations(limit int) [][]string {
	out := map[string][]string{}
	var current []string
	n.fillAllConfigurations(limit, &current, out)

	result := make([][]string, 0, len(out))
	for _, v := range out {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.Join(result[i], ",") < strings.Join(result[j], ",")
	})
	return result
}

func (n *Network) fillAllConfigurations(limit int, current *[]string, out map[string][]string) {
	if n.exhausted() {
		snapshot := append([]string(nil), *current...)
		sort.Strings(snapshot)
		out[strings.Join(snapshot, ",")] = snapshot
		return
	}
	if limit <= 0 {
		return
	}
	city := n.chooseCity()
	for opt := n.cells[city].down; opt != city; opt = n.cells[opt].down {
		supplied := n.coverCity(opt)
		*current = append(*current, supplied)
		n.fillAllConfigurations(limit-1, current, out)
		*current = (*current)[:len(*current)-1]
		n.uncoverCity(opt)
	}
}
