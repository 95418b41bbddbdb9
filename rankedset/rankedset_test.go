package rankedset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agl-alexglopez/dancing-links-sub001/rankedset"
)

func TestInsertAccumulatesRank(t *testing.T) {
	rs := rankedset.New[string]()
	rs.Insert(11, "Ghost")
	rs.Insert(0, "Ground")
	rs.Insert(2, "Poison")

	require.Equal(t, 13, rs.Rank())
	require.Equal(t, []string{"Ghost", "Ground", "Poison"}, rs.Elements())
}

func TestRemoveIsInverseOfInsert(t *testing.T) {
	rs := rankedset.New[string]()
	rs.Insert(5, "Water")
	rs.Remove(5, "Water")

	require.Equal(t, 0, rs.Rank())
	require.Equal(t, 0, rs.Size())
}

func TestLessOrdersByRankThenElements(t *testing.T) {
	low := rankedset.Of(11, "Ghost", "Ground", "Poison", "Water")
	high := rankedset.Of(13, "Electric", "Ghost", "Poison", "Water")

	require.True(t, low.Less(high))
	require.False(t, high.Less(low))

	tiedA := rankedset.Of(10, "A", "B")
	tiedB := rankedset.Of(10, "A", "C")
	require.True(t, tiedA.Less(tiedB))
}

func TestKeyDedupesEquivalentSets(t *testing.T) {
	a := rankedset.Of(30, "Fighting", "Grass", "Ground", "Ice")
	b := rankedset.Of(30, "Ice", "Ground", "Grass", "Fighting")

	require.Equal(t, a.Key(), b.Key())
}

func TestCloneIsIndependent(t *testing.T) {
	rs := rankedset.Of(1, "A")
	clone := rs.Clone()
	clone.Insert(1, "B")

	require.Equal(t, 1, rs.Size())
	require.Equal(t, 2, clone.Size())
}
