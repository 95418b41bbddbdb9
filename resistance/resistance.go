// Package resistance defines the Pokémon damage-multiplier enum and the
// (type, multiplier) pair the typing-coverage solver builds its matrix
// from, ported verbatim from Utilities/Resistance.h.
package resistance

// Multiplier is the damage factor a defensive type applies against an
// attacking type. The zero value is Empty, an explicit placeholder distinct
// from every real multiplier; it orders below Immune, so a comparison
// against Normal (as the Defense matrix builder makes) counts it as a
// resistance.
type Multiplier int

const (
	Empty Multiplier = iota
	Immune
	Quarter
	Half
	Normal
	Double
	Quadruple
)

// String renders the multiplier the way the solver's debug dumps expect.
func (m Multiplier) String() string {
	switch m {
	case Empty:
		return "x(empty)"
	case Immune:
		return "x0"
	case Quarter:
		return "x0.25"
	case Half:
		return "x0.5"
	case Normal:
		return "x1"
	case Double:
		return "x2"
	case Quadruple:
		return "x4"
	default:
		return "x?"
	}
}

// Resistance pairs an attacking type name with the multiplier a defensive
// type applies to it.
type Resistance struct {
	Type       string
	Multiplier Multiplier
}
