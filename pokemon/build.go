package pokemon

import (
	"sort"

	"github.com/agl-alexglopez/dancing-links-sub001/dlx"
	"github.com/agl-alexglopez/dancing-links-sub001/resistance"
)

// New builds a Links that solves kind over typeInteractions, a table keyed
// by defensive type name whose values list every (attacking type,
// multiplier) resistance that defensive type carries. For Defense the
// items are the attacking types and the options are the defensive types;
// for Attack the table is inverted so the items become defensive types and
// the options become attacking types, ported from
// PokemonLinks::buildDefenseLinks and PokemonLinks::buildAttackLinks.
func New(typeInteractions map[string][]resistance.Resistance, kind CoverageKind, opts ...Option) (*Links, error) {
	if !kind.valid() {
		return nil, ErrInvalidCoverageKind
	}
	if len(typeInteractions) == 0 {
		return nil, ErrEmptyTypeTable
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var items []dlx.Item
	var cells []dlx.Cell[typeLink]
	var optionTable []string
	if kind == Defense {
		items, cells, optionTable = buildDefenseLinks(typeInteractions)
	} else {
		items, cells, optionTable = buildAttackLinks(typeInteractions)
	}

	return &Links{
		m:              &dlx.Matrix[typeLink]{Items: items, Cells: cells},
		optionTable:    optionTable,
		kind:           kind,
		maxOutputSize:  cfg.maxOutputSize,
		maxTeamSize:    cfg.maxTeamSize,
		maxAttackSlots: cfg.maxAttackSlots,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedResistances(rs []resistance.Resistance) []resistance.Resistance {
	out := append([]resistance.Resistance{}, rs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

func buildDefenseLinks(typeInteractions map[string][]resistance.Resistance) ([]dlx.Item, []dlx.Cell[typeLink], []string) {
	keys := sortedKeys(typeInteractions)

	generationSet := map[string]struct{}{}
	for _, r := range typeInteractions[keys[0]] {
		generationSet[r.Type] = struct{}{}
	}
	generationTypes := make([]string, 0, len(generationSet))
	for t := range generationSet {
		generationTypes = append(generationTypes, t)
	}
	sort.Strings(generationTypes)

	items := []dlx.Item{{Name: "", Left: 0, Right: 1}}
	cells := []dlx.Cell[typeLink]{{}}
	columnBuilder := map[string]int{}
	index := 1
	for _, t := range generationTypes {
		columnBuilder[t] = index
		items = append(items, dlx.Item{Name: t, Left: index - 1, Right: index + 1})
		items[0].Left++
		cells = append(cells, dlx.Cell[typeLink]{TopOrLen: 0, Up: index, Down: index})
		index++
	}
	items[len(items)-1].Right = 0

	return initializeColumns(typeInteractions, columnBuilder, Defense, items, cells)
}

func buildAttackLinks(typeInteractions map[string][]resistance.Resistance) ([]dlx.Item, []dlx.Cell[typeLink], []string) {
	keys := sortedKeys(typeInteractions)

	items := []dlx.Item{{Name: "", Left: 0, Right: 1}}
	cells := []dlx.Cell[typeLink]{{}}
	columnBuilder := map[string]int{}
	index := 1
	invertedMap := map[string][]resistance.Resistance{}
	for _, defType := range keys {
		columnBuilder[defType] = index
		items = append(items, dlx.Item{Name: defType, Left: index - 1, Right: index + 1})
		items[0].Left++
		cells = append(cells, dlx.Cell[typeLink]{TopOrLen: 0, Up: index, Down: index})
		index++

		for _, atk := range sortedResistances(typeInteractions[defType]) {
			invertedMap[atk.Type] = append(invertedMap[atk.Type], resistance.Resistance{
				Type:       defType,
				Multiplier: atk.Multiplier,
			})
		}
	}
	items[len(items)-1].Right = 0

	return initializeColumns(invertedMap, columnBuilder, Attack, items, cells)
}

// initializeColumns appends one option row per sorted key of interactions,
// including only the resistances relevant to kind (less than Normal for
// Defense, greater than Normal for Attack), and wires each included cell
// into its column's vertical ring via columnBuilder, which doubles as a
// per-column tail pointer during construction. Ported statement-for-statement
// from PokemonLinks::initializeColumns, including the spacer-up wraparound
// trick that lets a row walk be resumed from its own first cell without a
// trailing spacer.
func initializeColumns(
	interactions map[string][]resistance.Resistance,
	columnBuilder map[string]int,
	kind CoverageKind,
	items []dlx.Item,
	cells []dlx.Cell[typeLink],
) ([]dlx.Item, []dlx.Cell[typeLink], []string) {
	optionTable := []string{""}
	previousSetSize := len(cells)
	currentLinksIndex := len(cells)
	typeLookupIndex := 1

	for _, optName := range sortedKeys(interactions) {
		resList := sortedResistances(interactions[optName])
		typeTitle := currentLinksIndex
		setSize := 0

		cells = append(cells, dlx.Cell[typeLink]{
			TopOrLen: -typeLookupIndex,
			Up:       currentLinksIndex - previousSetSize,
			Down:     currentLinksIndex,
		})

		for _, single := range resList {
			included := (kind == Defense && single.Multiplier < resistance.Normal) ||
				(kind == Attack && single.Multiplier > resistance.Normal)
			if !included {
				continue
			}
			currentLinksIndex++
			cells[typeTitle].Down++
			setSize++

			sType := single.Type
			ptr := columnBuilder[sType]
			oldTail := cells[ptr].Down
			cells[oldTail].TopOrLen++

			cells = append(cells, dlx.Cell[typeLink]{
				TopOrLen: oldTail,
				Up:       currentLinksIndex,
				Down:     currentLinksIndex,
				Payload:  typeLink{Multiplier: single.Multiplier},
			})
			cells[oldTail].Up = currentLinksIndex
			cells[currentLinksIndex].Up = ptr
			cells[currentLinksIndex].Down = cells[ptr].Down
			cells[ptr].Down = currentLinksIndex
			columnBuilder[sType] = currentLinksIndex
		}

		optionTable = append(optionTable, optName)
		typeLookupIndex++
		currentLinksIndex++
		previousSetSize = setSize
	}

	cells = append(cells, dlx.Cell[typeLink]{
		TopOrLen: dlx.SentinelSpacer,
		Up:       currentLinksIndex - previousSetSize,
		Down:     dlx.SentinelSpacer,
	})

	return items, cells, optionTable
}
