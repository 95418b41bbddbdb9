package matching

import (
	"github.com/agl-alexglopez/dancing-links-sub001/dlx"
	adj "github.com/agl-alexglopez/dancing-links-sub001/internal/adjacency"
)

// Network is a Dancing Links matrix specialized for pairing people: every
// option row has exactly two item cells, so no per-cell payload beyond
// dlx.Cell's own fields is needed. Ported from PartnerLinks/PerfectLinks.
type Network struct {
	m            *dlx.Matrix[struct{}]
	isWeighted   bool
	hasSingleton bool
}

// FromLinks builds an unweighted Network from an adjacency table; every
// edge is treated as weight 1. The table need not already be symmetric —
// FromLinks mirrors every edge before building, the way a caller assembling
// a graph from a one-directional edge list would expect.
func FromLinks(adjacency map[string]map[string]struct{}) (*Network, error) {
	if len(adjacency) == 0 {
		return nil, ErrEmptyNetwork
	}
	symmetric := adj.MakeSymmetric(adjacency)
	items, cells, hasSingleton := buildLinks(toWeights(symmetric), false)
	return &Network{
		m:            &dlx.Matrix[struct{}]{Items: items, Cells: cells},
		hasSingleton: hasSingleton,
	}, nil
}

// FromWeightedLinks builds a weighted Network from an adjacency table
// mapping each person to their neighbors and the weight of that edge.
// Negative weights are rejected with ErrNegativeWeight. The table is
// mirrored before building, same as FromLinks.
func FromWeightedLinks(adjacency map[string]map[string]int) (*Network, error) {
	if len(adjacency) == 0 {
		return nil, ErrEmptyNetwork
	}
	for _, neighbors := range adjacency {
		for _, weight := range neighbors {
			if weight < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}
	symmetric := symmetrizeWeighted(adjacency)
	items, cells, hasSingleton := buildLinks(symmetric, true)
	return &Network{
		m:            &dlx.Matrix[struct{}]{Items: items, Cells: cells},
		isWeighted:   true,
		hasSingleton: hasSingleton,
	}, nil
}

// HasSingleton reports whether the network contains a person with no
// possible partner at all, ported from PartnerLinks::hasSingleton_.
func (n *Network) HasSingleton() bool {
	return n.hasSingleton
}

func toWeights(adjacency map[string]map[string]struct{}) map[string]map[string]int {
	out := make(map[string]map[string]int, len(adjacency))
	for p, neighbors := range adjacency {
		out[p] = make(map[string]int, len(neighbors))
		for n := range neighbors {
			out[p][n] = 1
		}
	}
	return out
}

func symmetrizeWeighted(adjacency map[string]map[string]int) map[string]map[string]int {
	result := make(map[string]map[string]int, len(adjacency))
	for p, neighbors := range adjacency {
		if result[p] == nil {
			result[p] = make(map[string]int)
		}
		for nb, w := range neighbors {
			result[p][nb] = w
			if result[nb] == nil {
				result[nb] = make(map[string]int)
			}
			result[nb][p] = w
		}
	}
	return result
}
