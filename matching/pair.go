package matching

// Pair is an unordered pairing of two people, canonicalized so First <=
// Second: two Pairs naming the same two people always compare and print
// identically regardless of discovery order.
type Pair struct {
	First  string
	Second string
}

// NewPair returns the Pair naming a and b, canonicalized.
func NewPair(a, b string) Pair {
	if a <= b {
		return Pair{First: a, Second: b}
	}
	return Pair{First: b, Second: a}
}
