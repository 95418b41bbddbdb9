package pokemon

import (
	"github.com/agl-alexglopez/dancing-links-sub001/dlx"
	"github.com/agl-alexglopez/dancing-links-sub001/resistance"
)

// CoverageKind selects which direction of the type chart a Links solves:
// which defensive types resist every attack (Defense), or which attacking
// types are super effective against every defensive type (Attack).
type CoverageKind int

const (
	Defense CoverageKind = iota
	Attack
)

func (k CoverageKind) String() string {
	if k == Attack {
		return "Attack"
	}
	return "Defense"
}

// typeLink is the per-cell payload carried alongside dlx.Cell: the
// resistance multiplier the row contributes toward a coverage's rank, and
// the recursion depth at which an overlapping search first dimmed this
// column (0 means untouched), ported from PokemonLinks's pokeLink.multiplier
// and pokeLink.depthTag fields.
type typeLink struct {
	Multiplier resistance.Multiplier
	DepthTag   int
}

// Links is a Dancing Links matrix specialized for Pokémon type coverage,
// ported from PokemonLinks.
type Links struct {
	m              *dlx.Matrix[typeLink]
	optionTable    []string
	kind           CoverageKind
	maxOutputSize  int
	maxTeamSize    int
	maxAttackSlots int
	hitLimit       bool
}

func (k CoverageKind) valid() bool {
	return k == Defense || k == Attack
}
