package pokemon

import "errors"

// Sentinel errors returned by New, following the per-package errors.go
// convention lvlath's core/matrix/builder packages use.
var (
	// ErrEmptyTypeTable is returned when the type-interaction table has no
	// entries to build a matrix from.
	ErrEmptyTypeTable = errors.New("pokemon: type interaction table is empty")
	// ErrInvalidCoverageKind is returned when kind is neither Defense nor
	// Attack.
	ErrInvalidCoverageKind = errors.New("pokemon: coverage kind must be Defense or Attack")
)
