package dlx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agl-alexglopez/dancing-links-sub001/dlx"
)

// ghostWaterMatrix reproduces the small defensive-typing fixture from the
// original PokemonLinks.cpp test "Initialize small defensive links": Ghost
// resists Normal (immune), Water resists Fire and Water (half), against
// attack types {Fire, Normal, Water}. Payload is the raw multiplier rank
// (1=immune, 3=half) since dlx itself doesn't know about resistances.
func ghostWaterMatrix() *dlx.Matrix[int] {
	return &dlx.Matrix[int]{
		Items: []dlx.Item{
			{Name: "", Left: 3, Right: 1},
			{Name: "Fire", Left: 0, Right: 2},
			{Name: "Normal", Left: 1, Right: 3},
			{Name: "Water", Left: 2, Right: 0},
		},
		Cells: []dlx.Cell[int]{
			{TopOrLen: 0, Up: 0, Down: 0},
			{TopOrLen: 1, Up: 7, Down: 7},
			{TopOrLen: 1, Up: 5, Down: 5},
			{TopOrLen: 1, Up: 8, Down: 8},
			{TopOrLen: -1, Up: 0, Down: 5},
			{TopOrLen: 2, Up: 2, Down: 2, Payload: 1}, // immune
			{TopOrLen: -2, Up: 5, Down: 8},
			{TopOrLen: 1, Up: 1, Down: 1, Payload: 3}, // half
			{TopOrLen: 3, Up: 3, Down: 3, Payload: 3}, // half
			{TopOrLen: dlx.SentinelSpacer, Up: 7, Down: dlx.SentinelSpacer},
		},
		Options: []string{"", "Ghost", "Water"},
	}
}

func TestExhausted(t *testing.T) {
	m := ghostWaterMatrix()
	require.False(t, m.Exhausted())

	m.Items[0].Right = 0
	require.True(t, m.Exhausted())
}

func TestChooseItemPicksMinimumRemainingValues(t *testing.T) {
	m := ghostWaterMatrix()

	// Fire, Normal and Water all have exactly one row: first encountered
	// (Fire, item index 1) wins the tie.
	require.Equal(t, 1, dlx.ChooseItem(m))
}

func TestChooseItemReportsDeadBranch(t *testing.T) {
	m := ghostWaterMatrix()
	m.Cells[1].TopOrLen = 0 // Fire now has no covering option

	require.Equal(t, dlx.DeadBranch, dlx.ChooseItem(m))
}

func TestChooseItemOnEmptyRingReturnsZero(t *testing.T) {
	m := ghostWaterMatrix()
	m.Items[0].Right = 0

	require.Equal(t, 0, dlx.ChooseItem(m))
}

func TestSentinelSpacerMatchesIntMin(t *testing.T) {
	require.Equal(t, math.MinInt32, dlx.SentinelSpacer)
}

func TestNumItemsAndOptions(t *testing.T) {
	m := ghostWaterMatrix()
	require.Equal(t, 3, m.NumItems())
	require.Equal(t, 2, m.NumOptions())
}
