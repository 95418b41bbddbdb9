// Package rankedset provides RankedSet, an ordered set of elements paired
// with an integer rank accumulator, ported from the original
// Utilities/RankedSet.h template. A RankedSet orders first by rank, then by
// its element set lexicographically, which is the ordering the Pokémon
// solver uses to rank competing type coverages (lower rank — stronger
// aggregate resistance — sorts first).
package rankedset
