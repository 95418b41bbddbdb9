// Package pokemon solves Pokémon type-coverage problems with Dancing Links:
// given a table mapping defensive types to the resistances they carry
// against each attacking type, find minimum sets of at most six defensive
// types that jointly resist every attack type (DEFENSE), or minimum sets of
// at most twenty-four attacking types that jointly deal super-effective
// damage against every defensive type (ATTACK). Both an exact cover (no
// type's resistance is redundant) and an overlapping cover (redundancy
// allowed, useful when an exact cover doesn't exist or isn't required) are
// supported, ranked by the sum of the contributing multipliers.
//
// Ported from PokemonLinks.cpp/h: buildDefenseLinks/buildAttackLinks plus
// initializeColumns construct the matrix; coverType/uncoverType implement
// the strict exact-cover primitive and looseCoverType/looseUncoverType the
// overlap-permitting variant that tags columns with the recursion depth at
// which they were first dimmed.
package pokemon
