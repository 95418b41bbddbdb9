package matching

import "errors"

// Sentinel errors returned by the FromLinks/FromWeightedLinks builders,
// following the per-package errors.go convention lvlath's core/matrix/builder
// packages use.
var (
	// ErrEmptyNetwork is returned when the adjacency table has no people.
	ErrEmptyNetwork = errors.New("matching: network has no people")
	// ErrNegativeWeight is returned when a weighted edge carries a negative
	// weight. The original source is silent on this case (spec open
	// question §9); this module resolves it by rejecting the edge at
	// construction time rather than letting a negative weight silently
	// distort getMaxWeightMatching's comparisons.
	ErrNegativeWeight = errors.New("matching: edge weight must be non-negative")
)
