package disaster

import adj "github.com/agl-alexglopez/dancing-links-sub001/internal/adjacency"

// NewNetwork builds a Network from a city adjacency table. The table need
// not already be symmetric — NewNetwork mirrors every edge before
// building, the way DisasterUtilities::makeSymmetric does for the original
// sample worlds.
func NewNetwork(cities map[string]map[string]struct{}) (*Network, error) {
	if len(cities) == 0 {
		return nil, ErrEmptyNetwork
	}
	symmetric := adj.MakeSymmetric(cities)
	items, cells := buildNetwork(symmetric)
	return &Network{items: items, cells: cells}, nil
}
